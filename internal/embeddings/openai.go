package embeddings

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

const DefaultModel = "text-embedding-3-small"

// embeddingClient is the slice of the OpenAI client the embedder needs,
// narrowed so tests can substitute a double.
type embeddingClient interface {
	CreateEmbeddings(ctx context.Context, req openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// OpenAIEmbedder produces sentence embeddings through the OpenAI embeddings
// API. Deterministic for a given input within a process lifetime.
type OpenAIEmbedder struct {
	client embeddingClient
	model  openai.EmbeddingModel
}

type OpenAIEmbedderDependencies struct {
	Client *openai.Client
	Model  string
}

func NewOpenAIEmbedder(deps OpenAIEmbedderDependencies) *OpenAIEmbedder {
	if deps.Model == "" {
		deps.Model = DefaultModel
	}
	return &OpenAIEmbedder{
		client: deps.Client,
		model:  openai.EmbeddingModel(deps.Model),
	}
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: e.model,
	})
	if err != nil {
		log.Error().Err(err).Str("model", string(e.model)).Msg("Failed to generate embedding")
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding response contained no data")
	}
	return resp.Data[0].Embedding, nil
}
