package controller

import (
	m "github.com/mouse-blink/vifmap/internal/model"
)

// Message types.
type estimationMsg struct {
	estimations []m.Estimation
	err         error
}

type mapStartedMsg struct {
	estimation m.Estimation
}

type progressMsg struct {
	done  int
	total int
}

type mapCompletedMsg struct {
	summary m.MapSummary
}

type artifactsMsg struct {
	ids []string
}

type artifactMsg struct {
	id       string
	artifact m.Artifact
}

// closeMsg tells a model the workflow is over. Models with nothing to show quit on it.
type closeMsg struct{}

// List item types.
type fileItem struct {
	path       string
	structural int
	remaining  int
}

func (f fileItem) FilterValue() string {
	return f.path
}

type featureItem struct {
	label    string
	mappings []m.ScoredMapping
}

func (f featureItem) FilterValue() string {
	return f.label
}

type artifactItem string

func (a artifactItem) FilterValue() string {
	return string(a)
}
