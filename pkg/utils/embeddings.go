package utils

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// OpenAIEmbeddingClient wraps the embeddings endpoint.
type OpenAIEmbeddingClient struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func NewOpenAIEmbeddingClient(apiKey, model string) EmbeddingClientInterface {
	m := openai.SmallEmbedding3
	if model != "" {
		m = openai.EmbeddingModel(model)
	}
	return &OpenAIEmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  m,
	}
}

func (c *OpenAIEmbeddingClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// LocalEmbeddingClient is a hash-based fallback used when no embedding
// provider is configured. Not semantically meaningful, but keeps the
// suggestion endpoint functional in development.
type LocalEmbeddingClient struct {
	dims int
}

func NewLocalEmbeddingClient() EmbeddingClientInterface {
	return &LocalEmbeddingClient{dims: 1536}
}

func (c *LocalEmbeddingClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	vector := make([]float32, c.dims)

	words := strings.Fields(strings.ToLower(text))
	for _, word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		idx := int(h.Sum32()) % c.dims
		if idx < 0 {
			idx += c.dims
		}
		vector[idx] += 1.0
	}

	var magnitude float32
	for _, v := range vector {
		magnitude += v * v
	}
	magnitude = float32(math.Sqrt(float64(magnitude)))
	if magnitude > 0 {
		for i := range vector {
			vector[i] /= magnitude
		}
	}

	return pgvector.NewVector(vector), nil
}

// NewEmbeddingClient picks the embedding provider from config.
func NewEmbeddingClient(provider, apiKey, model string) (EmbeddingClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIEmbeddingClient(apiKey, model), nil
	case "local", "":
		return NewLocalEmbeddingClient(), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}
