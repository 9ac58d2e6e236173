package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// Artifact file names, shared by every store.
const (
	ImageFile   = "image.png"
	CodeFile    = "code.tex"
	MappingFile = "mapping.yaml"
)

// ErrArtifactNotFound is returned when no artifact is stored under an id.
var ErrArtifactNotFound = errors.New("artifact not found")

// ResultStore persists mapped results so they can be queried without rendering again.
type ResultStore interface {
	Save(ctx context.Context, id string, artifact m.Artifact) error
	Load(ctx context.Context, id string) (m.Artifact, error)
	List(ctx context.Context) ([]string, error)
}

type mappingYAML struct {
	Description string        `yaml:"description,omitempty"`
	Embedding   embeddingYAML `yaml:"embedding,omitempty"`
	Features    []featureYAML `yaml:"features"`
}

type embeddingYAML struct {
	Model string `yaml:"model,omitempty"`
	Dims  int    `yaml:"dims,omitempty"`
}

type featureYAML struct {
	Label     string            `yaml:"label"`
	Embedding []float32         `yaml:"embedding,flow,omitempty"`
	Mappings  []m.ScoredMapping `yaml:"mappings"`
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("artifact id is required")
	}

	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("invalid artifact id %q", id)
	}

	return nil
}

// encodeArtifact renders an artifact into its three files.
func encodeArtifact(a m.Artifact) (map[string][]byte, error) {
	if a.Image == nil {
		return nil, fmt.Errorf("artifact has no image")
	}

	if a.Embeddings != nil && len(a.Embeddings) != len(a.Features) {
		return nil, fmt.Errorf("artifact has %d embeddings for %d features", len(a.Embeddings), len(a.Features))
	}

	doc := mappingYAML{
		Description: a.Description,
		Embedding:   embeddingYAML{Model: a.EmbeddingModel},
		Features:    make([]featureYAML, 0, len(a.Features)),
	}

	if len(a.Embeddings) > 0 {
		doc.Embedding.Dims = len(a.Embeddings[0])
	}

	for i, f := range a.Features {
		entry := featureYAML{Label: f.Label, Mappings: f.Mappings}
		if a.Embeddings != nil {
			entry.Embedding = a.Embeddings[i]
		}

		doc.Features = append(doc.Features, entry)
	}

	mapping, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal mapping: %w", err)
	}

	var img bytes.Buffer
	if err := png.Encode(&img, a.Image); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	return map[string][]byte{
		ImageFile:   img.Bytes(),
		CodeFile:    []byte(a.Code),
		MappingFile: mapping,
	}, nil
}

// decodeArtifact rebuilds an artifact from its three files.
func decodeArtifact(files map[string][]byte) (m.Artifact, error) {
	var doc mappingYAML
	if err := yaml.Unmarshal(files[MappingFile], &doc); err != nil {
		return m.Artifact{}, fmt.Errorf("unmarshal mapping: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(files[ImageFile]))
	if err != nil {
		return m.Artifact{}, fmt.Errorf("decode image: %w", err)
	}

	artifact := m.Artifact{
		Image:       img,
		Code:        string(files[CodeFile]),
		Description:    doc.Description,
		Features:       make(m.FeatureMap, 0, len(doc.Features)),
		EmbeddingModel: doc.Embedding.Model,
	}

	hasEmbeddings := false

	for _, f := range doc.Features {
		artifact.Features = append(artifact.Features, m.Feature{Label: f.Label, Mappings: f.Mappings})
		hasEmbeddings = hasEmbeddings || len(f.Embedding) > 0
	}

	if hasEmbeddings {
		artifact.Embeddings = make([][]float32, len(doc.Features))
		for i, f := range doc.Features {
			if doc.Embedding.Dims > 0 && len(f.Embedding) != doc.Embedding.Dims {
				return m.Artifact{}, fmt.Errorf("embedding of %q has %d values, want %d", f.Label, len(f.Embedding), doc.Embedding.Dims)
			}

			artifact.Embeddings[i] = f.Embedding
		}
	}

	return artifact, nil
}

// LocalResultStore keeps each artifact in its own directory under root.
type LocalResultStore struct {
	root string
}

// NewLocalResultStore constructs a store rooted at dir.
func NewLocalResultStore(dir string) *LocalResultStore {
	return &LocalResultStore{root: dir}
}

// Save writes the artifact files into root/id, replacing a previous artifact.
func (s *LocalResultStore) Save(_ context.Context, id string, artifact m.Artifact) error {
	if err := validateID(id); err != nil {
		return err
	}

	files, err := encodeArtifact(artifact)
	if err != nil {
		return err
	}

	dir := filepath.Join(s.root, id)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	for _, name := range []string{ImageFile, CodeFile, MappingFile} {
		if err := os.WriteFile(filepath.Join(dir, name), files[name], 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return nil
}

// Load reads the artifact stored under id.
func (s *LocalResultStore) Load(_ context.Context, id string) (m.Artifact, error) {
	if err := validateID(id); err != nil {
		return m.Artifact{}, err
	}

	dir := filepath.Join(s.root, id)
	files := make(map[string][]byte, 3)

	for _, name := range []string{ImageFile, CodeFile, MappingFile} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return m.Artifact{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, id)
			}

			return m.Artifact{}, fmt.Errorf("failed to read %s: %w", name, err)
		}

		files[name] = data
	}

	return decodeArtifact(files)
}

// List returns the ids of the stored artifacts, sorted.
func (s *LocalResultStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("failed to list %s: %w", s.root, err)
	}

	ids := make([]string, 0, len(entries))

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		if _, err := os.Stat(filepath.Join(s.root, e.Name(), MappingFile)); err == nil {
			ids = append(ids, e.Name())
		}
	}

	sort.Strings(ids)

	return ids, nil
}
