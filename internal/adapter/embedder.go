package adapter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minio/highwayhash"
	"google.golang.org/genai"
)

const (
	// DefaultEmbeddingModel is the Gemini model used when none is configured.
	DefaultEmbeddingModel = "text-embedding-004"
	defaultHashDims       = 256
)

var embedHashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// ErrEmptyEmbedding is returned when a provider answers without vectors.
var ErrEmptyEmbedding = errors.New("embedding provider returned no vectors")

// Embedder maps text into a vector space where Similarity compares meanings.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Similarity(a, b []float32) float64
}

// EmbedderName returns the model name of e when it reports one, e.g. "hash/256"
// or "gemini/text-embedding-004", and "" otherwise. Vectors from embedders with
// different names cannot be compared.
func EmbedderName(e Embedder) string {
	if named, ok := e.(interface{ Name() string }); ok {
		return named.Name()
	}

	return ""
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0 when the
// vectors differ in length or one of them is zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, na, nb float64

	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}

	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// GeminiEmbedder calls the Gemini embedding endpoint.
type GeminiEmbedder struct {
	cli   *genai.Client
	model string
}

// NewGeminiEmbedder creates a Gemini-backed embedder.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	if model == "" {
		model = DefaultEmbeddingModel
	}

	return &GeminiEmbedder{cli: cli, model: model}, nil
}

// Embed returns the embedding of a single text.
func (g *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	return vectors[0], nil
}

// EmbedBatch embeds texts in one request, preserving order.
func (g *GeminiEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}

	resp, err := g.cli.Models.EmbedContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("embed %d texts: %w", len(texts), err)
	}

	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, ErrEmptyEmbedding
	}

	vectors := make([][]float32, len(texts))
	for i, e := range resp.Embeddings {
		if e == nil || len(e.Values) == 0 {
			return nil, ErrEmptyEmbedding
		}

		vectors[i] = e.Values
	}

	return vectors, nil
}

// Name returns "gemini/" followed by the model.
func (g *GeminiEmbedder) Name() string {
	return "gemini/" + g.model
}

// Similarity is the cosine similarity.
func (g *GeminiEmbedder) Similarity(a, b []float32) float64 {
	return CosineSimilarity(a, b)
}

// HashEmbedder is an offline embedder: character trigrams of the lower-cased,
// space-padded text are hashed into a fixed number of buckets and the vector is
// L2-normalized. Texts sharing words score close to 1.
type HashEmbedder struct {
	dims int
}

// NewHashEmbedder creates a HashEmbedder with dims buckets (256 when dims <= 0).
func NewHashEmbedder(dims int) *HashEmbedder {
	if dims <= 0 {
		dims = defaultHashDims
	}

	return &HashEmbedder{dims: dims}
}

// Embed hashes the trigrams of text.
func (h *HashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, h.dims)

	runes := []rune(" " + strings.ToLower(strings.Join(strings.Fields(text), " ")) + " ")
	for i := 0; i+3 <= len(runes); i++ {
		sum := highwayhash.Sum64([]byte(string(runes[i:i+3])), embedHashKey)
		vector[sum%uint64(h.dims)]++
	}

	var norm float64
	for _, v := range vector {
		norm += float64(v) * float64(v)
	}

	if norm == 0 {
		return vector, nil
	}

	scale := float32(1 / math.Sqrt(norm))
	for i := range vector {
		vector[i] *= scale
	}

	return vector, nil
}

// EmbedBatch embeds every text.
func (h *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))

	for _, text := range texts {
		v, err := h.Embed(ctx, text)
		if err != nil {
			return nil, err
		}

		vectors = append(vectors, v)
	}

	return vectors, nil
}

// Name returns "hash/" followed by the bucket count.
func (h *HashEmbedder) Name() string {
	return "hash/" + strconv.Itoa(h.dims)
}

// Similarity is the cosine similarity.
func (h *HashEmbedder) Similarity(a, b []float32) float64 {
	return CosineSimilarity(a, b)
}
