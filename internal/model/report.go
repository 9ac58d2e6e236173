package model

import "image"

// Detection is a labelled region reported by the visual detector.
type Detection struct {
	Label string `json:"label" yaml:"label"`
	Box   Box2D  `json:"box" yaml:"box"`
}

// CodeImageMapping ties code spans to the image zone they are believed to produce.
type CodeImageMapping struct {
	Spans []Span `yaml:"spans"`
	Zone  Box2D  `yaml:"zone"`
}

// ScoredMapping is a mapping with its evidence score.
type ScoredMapping struct {
	Mapping CodeImageMapping `yaml:"mapping"`
	Score   float64          `yaml:"score"`
}

// Feature holds the ranked mappings of one detected label, best first.
type Feature struct {
	Label    string          `yaml:"label"`
	Mappings []ScoredMapping `yaml:"mappings"`
}

// FeatureMap is the ordered collection of features for one image.
type FeatureMap []Feature

// Labels returns the feature labels in map order.
func (fm FeatureMap) Labels() []string {
	labels := make([]string, 0, len(fm))
	for _, f := range fm {
		labels = append(labels, f.Label)
	}

	return labels
}

// Get returns the mappings recorded for label.
func (fm FeatureMap) Get(label string) ([]ScoredMapping, bool) {
	for _, f := range fm {
		if f.Label == label {
			return f.Mappings, true
		}
	}

	return nil, false
}

// Artifact is the persisted form of a mapped result.
type Artifact struct {
	Image       image.Image
	Code        string
	Description string
	Features    FeatureMap
	Embeddings  [][]float32
	// EmbeddingModel names the embedder that produced Embeddings, such as
	// "hash/256". Empty when unknown.
	EmbeddingModel string
}

// QueryResult is a mapping re-ranked against a free-text query.
type QueryResult struct {
	Label      string
	Similarity float64
	Mapping    CodeImageMapping
	Score      float64
	Adjusted   float64
}

// MapSummary describes a finished mapping run.
type MapSummary struct {
	ID          string
	Source      Source
	Description string
	Code        string
	Mutants     int
	Rejected    int
	Features    FeatureMap
}
