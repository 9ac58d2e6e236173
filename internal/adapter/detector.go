package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"google.golang.org/genai"

	m "github.com/mouse-blink/vifmap/internal/model"
)

const (
	// DefaultDetectorModel is the Gemini vision model used when none is configured.
	DefaultDetectorModel = "gemini-2.5-flash"
	// DetectorScale is the grid the detector reports boxes on.
	DetectorScale = 1000

	describePrompt = `Give me a JSON describing the image.
The first field "description" contains a high-level description of the image.
The second field "features" contains a list of all the specific features in the image.
Notes:
- Each feature MUST have a precise name, preferably with position and color attributes.
- Features CAN be described in one to five words.
- Only existing features in the image are to be listed.
- Features MUST describe as many instances of things as possible, with a name allowing to pinpoint which feature is where.
- The JSON MUST be between code blocks.

Output format:
` + "```json" + `
{"description": "high-level description", "features": ["feature1", "feature2"]}
` + "```"

	localizePrompt = `Detect, with no more than 20 items. Output a json list where each entry contains the 2D bounding box in "box_2d" and each of these labels:
%s
in a field "label".`
)

// ErrDetectionParse is returned when detector output is not the expected JSON.
var ErrDetectionParse = errors.New("malformed detector output")

// Description is the detector's summary of an image and the features it lists.
type Description struct {
	Text     string   `json:"description"`
	Features []string `json:"features"`
}

// Detector finds labelled features in an image.
type Detector interface {
	Describe(ctx context.Context, img image.Image) (Description, error)
	Localize(ctx context.Context, img image.Image, labels []string) ([]m.Detection, error)
}

// ExtractJSON returns the content of the first fenced code block of text, or text
// itself when there is none.
func ExtractJSON(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return strings.TrimSpace(text)
	}

	body := text[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 && !strings.ContainsAny(body[:nl], "[{") {
		body = body[nl+1:]
	}

	if end := strings.Index(body, "```"); end >= 0 {
		body = body[:end]
	}

	return strings.TrimSpace(body)
}

// ParseDescription decodes a describe answer.
func ParseDescription(raw string) (Description, error) {
	var d Description
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &d); err != nil {
		return Description{}, fmt.Errorf("%w: %v", ErrDetectionParse, err)
	}

	return d, nil
}

type rawDetection struct {
	Box   []float64 `json:"box_2d"`
	Label string    `json:"label"`
}

// ParseDetections decodes a localize answer: a list of {"box_2d": [ymin, xmin, ymax,
// xmax], "label": ...} entries with coordinates on a scale grid. Scale 0 means the
// coordinates are already pixels.
func ParseDetections(raw string, bounds image.Rectangle, scale float64) ([]m.Detection, error) {
	var entries []rawDetection
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDetectionParse, err)
	}

	detections := make([]m.Detection, 0, len(entries))

	for i, e := range entries {
		if len(e.Box) != 4 {
			return nil, fmt.Errorf("%w: entry %d has %d coordinates", ErrDetectionParse, i, len(e.Box))
		}

		if strings.TrimSpace(e.Label) == "" {
			return nil, fmt.Errorf("%w: entry %d has no label", ErrDetectionParse, i)
		}

		box := RescaleBox([4]float64{e.Box[0], e.Box[1], e.Box[2], e.Box[3]}, bounds.Dx(), bounds.Dy(), scale)
		if err := box.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrDetectionParse, i, err)
		}

		detections = append(detections, m.Detection{Label: e.Label, Box: box})
	}

	return detections, nil
}

// RescaleBox converts [ymin, xmin, ymax, xmax] on a scale grid into a pixel Box2D
// for an image of the given size.
func RescaleBox(box2d [4]float64, width, height int, scale float64) m.Box2D {
	adjust := func(v float64, size int) float64 {
		if scale <= 0 {
			return v
		}

		return v / scale * float64(size)
	}

	return m.Box2D{
		Left:   adjust(box2d[1], width),
		Top:    adjust(box2d[0], height),
		Right:  adjust(box2d[3], width),
		Bottom: adjust(box2d[2], height),
	}
}

// GeminiDetector asks a Gemini vision model to describe and localize features.
type GeminiDetector struct {
	cli   *genai.Client
	model string
}

// NewGeminiDetector creates a Gemini-backed detector.
func NewGeminiDetector(ctx context.Context, apiKey, model string) (*GeminiDetector, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	if model == "" {
		model = DefaultDetectorModel
	}

	return &GeminiDetector{cli: cli, model: model}, nil
}

// Describe lists the features of img.
func (g *GeminiDetector) Describe(ctx context.Context, img image.Image) (Description, error) {
	text, err := g.ask(ctx, img, describePrompt)
	if err != nil {
		return Description{}, err
	}

	return ParseDescription(text)
}

// Localize returns a pixel box for each label found in img.
func (g *GeminiDetector) Localize(ctx context.Context, img image.Image, labels []string) ([]m.Detection, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	text, err := g.ask(ctx, img, fmt.Sprintf(localizePrompt, strings.Join(labels, ", ")))
	if err != nil {
		return nil, err
	}

	return ParseDetections(text, img.Bounds(), DetectorScale)
}

func (g *GeminiDetector) ask(ctx context.Context, img image.Image, prompt string) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(buf.Bytes(), "image/png"),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("detector request: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrDetectionParse)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return sb.String(), nil
}
