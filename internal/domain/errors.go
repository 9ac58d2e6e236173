package domain

import "errors"

var (
	// ErrCropSizeMismatch is returned when two crops cannot be compared pixel by pixel.
	ErrCropSizeMismatch = errors.New("crop sizes differ")
	// ErrEmbeddingMismatch is returned when label embeddings do not match the
	// features or cannot be compared with the query embedding.
	ErrEmbeddingMismatch = errors.New("embeddings do not match")
)
