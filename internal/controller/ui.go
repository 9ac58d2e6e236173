// Package controller provides output adapters for displaying mapping results.
package controller

import (
	m "github.com/mouse-blink/vifmap/internal/model"
)

// StartMode selects which screen a UI opens with.
type StartMode int

// Screens a UI can start on.
const (
	ModeEstimate StartMode = iota
	ModeMap
	ModeView
)

// StartOption configures UI.Start.
type StartOption func(*StartConfig)

// StartConfig is the result of applying StartOptions.
type StartConfig struct {
	mode StartMode
}

// Mode returns the configured mode.
func (c StartConfig) Mode() StartMode {
	return c.mode
}

// WithEstimateMode opens the per-document candidate count listing.
func WithEstimateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEstimate
	}
}

// WithMapMode sets the UI to mapping mode with render progress.
func WithMapMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMap
	}
}

// WithViewMode sets the UI to browse stored artifacts.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeEstimate}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI shows mapping runs, query results and stored artifacts. SimpleUI prints
// tables; TUI runs an interactive bubbletea program.
type UI interface {
	Start(options ...StartOption) error
	Close()
	// Wait blocks until the user leaves the UI.
	Wait()
	DisplayEstimation(estimations []m.Estimation, err error) error
	DisplayMapStarted(estimation m.Estimation)
	// DisplayProgress may be called from several goroutines.
	DisplayProgress(done, total int)
	DisplayMapCompleted(summary m.MapSummary)
	DisplayCode(code string)
	DisplayQueryResults(query string, results []m.QueryResult)
	DisplayArtifacts(ids []string) error
	DisplayArtifact(id string, artifact m.Artifact) error
}
