package adapter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultRenderTimeout = 30 * time.Second
	defaultRenderDPI     = 100
	renderBaseName       = "figure"
)

// ErrRenderTimeout is returned when a render exceeds its time budget.
var ErrRenderTimeout = errors.New("render timed out")

// Renderer compiles markup into a raster image.
type Renderer interface {
	Render(ctx context.Context, code string) (image.Image, error)
}

// RenderFailure is a toolchain error. Diagnostic holds the error block of the
// compiler log when one could be found, the raw output otherwise.
type RenderFailure struct {
	Diagnostic string
}

func (e *RenderFailure) Error() string {
	return "render failed: " + e.Diagnostic
}

// ExtractDiagnostic keeps the lines of a LaTeX log from the first "! " error line up
// to the fatal error trailer.
func ExtractDiagnostic(log string) string {
	var (
		lines  []string
		saving bool
	)

	for _, line := range strings.Split(log, "\n") {
		if strings.HasPrefix(line, "! ") {
			saving = true
		}

		if !saving {
			continue
		}

		if strings.HasPrefix(line, "!  ==> Fatal error occurred") {
			saving = false
			continue
		}

		lines = append(lines, strings.TrimSpace(line))
	}

	return strings.Join(lines, "\n")
}

type commandRunner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

func execCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	return cmd.CombinedOutput()
}

// LatexRenderer compiles a complete LaTeX document with pdflatex and rasterizes
// the first page of the PDF with pdftoppm.
type LatexRenderer struct {
	latexBin  string
	rasterBin string
	dpi       int
	timeout   time.Duration
	logger    *slog.Logger
	run       commandRunner
}

// RendererOption configures a LatexRenderer.
type RendererOption func(*LatexRenderer)

// WithLatexBinary overrides the pdflatex executable.
func WithLatexBinary(path string) RendererOption {
	return func(r *LatexRenderer) {
		if path != "" {
			r.latexBin = path
		}
	}
}

// WithRasterBinary overrides the pdftoppm executable.
func WithRasterBinary(path string) RendererOption {
	return func(r *LatexRenderer) {
		if path != "" {
			r.rasterBin = path
		}
	}
}

// WithDPI sets the rasterization resolution.
func WithDPI(dpi int) RendererOption {
	return func(r *LatexRenderer) {
		if dpi > 0 {
			r.dpi = dpi
		}
	}
}

// WithRenderTimeout bounds each Render call.
func WithRenderTimeout(timeout time.Duration) RendererOption {
	return func(r *LatexRenderer) {
		if timeout > 0 {
			r.timeout = timeout
		}
	}
}

// WithRendererLogger sets the logger used for toolchain diagnostics.
func WithRendererLogger(logger *slog.Logger) RendererOption {
	return func(r *LatexRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewLatexRenderer constructs a LatexRenderer with a 30s timeout and 100 DPI by default.
func NewLatexRenderer(opts ...RendererOption) *LatexRenderer {
	r := &LatexRenderer{
		latexBin:  "pdflatex",
		rasterBin: "pdftoppm",
		dpi:       defaultRenderDPI,
		timeout:   defaultRenderTimeout,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		run:       execCommand,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render compiles code in a scratch directory that is removed afterwards.
func (r *LatexRenderer) Render(ctx context.Context, code string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "vifmap-render-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create render dir: %w", err)
	}

	defer func() {
		_ = os.RemoveAll(dir)
	}()

	texPath := filepath.Join(dir, renderBaseName+".tex")
	if err := os.WriteFile(texPath, []byte(code), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	out, err := r.run(ctx, dir, r.latexBin,
		"-halt-on-error", "-interaction=nonstopmode", "-output-directory", dir, texPath)
	if err != nil {
		return nil, r.failure(ctx, out, err)
	}

	pdfPath := filepath.Join(dir, renderBaseName+".pdf")
	out, err = r.run(ctx, dir, r.rasterBin,
		"-png", "-r", strconv.Itoa(r.dpi), "-f", "1", "-singlefile", pdfPath, filepath.Join(dir, renderBaseName))
	if err != nil {
		return nil, r.failure(ctx, out, err)
	}

	return decodePNG(filepath.Join(dir, renderBaseName+".png"))
}

func (r *LatexRenderer) failure(ctx context.Context, output []byte, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrRenderTimeout
	case ctx.Err() != nil:
		return fmt.Errorf("render cancelled: %w", ctx.Err())
	}

	diagnostic := ExtractDiagnostic(string(output))
	if diagnostic == "" {
		diagnostic = strings.TrimSpace(string(output))
	}

	if diagnostic == "" {
		diagnostic = err.Error()
	}

	r.logger.Debug("toolchain failed", "error", err, "diagnostic", diagnostic)

	return &RenderFailure{Diagnostic: diagnostic}
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &RenderFailure{Diagnostic: fmt.Sprintf("no raster output: %v", err)}
	}

	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, &RenderFailure{Diagnostic: fmt.Sprintf("invalid raster output: %v", err)}
	}

	return img, nil
}
