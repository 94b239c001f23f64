package initialization

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/Team-useMemo/Jugger-AI/internal/classify"
	"github.com/Team-useMemo/Jugger-AI/internal/config"
	"github.com/Team-useMemo/Jugger-AI/internal/controllers"
	"github.com/Team-useMemo/Jugger-AI/internal/embeddings"
	"github.com/Team-useMemo/Jugger-AI/internal/keywords"
	mongostore "github.com/Team-useMemo/Jugger-AI/internal/storage/mongo"
	"github.com/Team-useMemo/Jugger-AI/internal/temporal"
	"github.com/Team-useMemo/Jugger-AI/internal/tokenizer"
	"github.com/Team-useMemo/Jugger-AI/internal/urlcheck"
)

// Dependencies is the fully-wired object graph for the service.
type Dependencies struct {
	ClassifyController *controllers.ClassifyController
}

// BuildDependencies connects to MongoDB and wires every component from
// configuration.
func BuildDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	database, err := mongostore.Connect(ctx, cfg.MongoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to set up category store: %w", err)
	}
	store := mongostore.NewCategoryStore(database)

	embedder := embeddings.NewOpenAIEmbedder(embeddings.OpenAIEmbedderDependencies{
		Client: openai.NewClient(cfg.OpenAIAPIKey),
		Model:  cfg.EmbeddingModel,
	})

	posTokenizer := tokenizer.NewClient(tokenizer.ClientDependencies{
		BaseURL: cfg.TokenizerURL,
	})

	classifier := classify.NewClassifier(classify.ClassifierDependencies{
		Tokenizer:  posTokenizer,
		Keyphrases: keywords.NewExtractor(keywords.ExtractorDependencies{Embedder: embedder}),
		Threshold:  cfg.SimilarityThreshold,
	})

	classifyService := classify.NewService(classify.ServiceDependencies{
		Embedder:      embedder,
		CategoryStore: store,
		Classifier:    classifier,
		URLValidator: urlcheck.NewValidator(urlcheck.ValidatorDependencies{
			Client:         &http.Client{},
			Timeout:        cfg.ProbeTimeout,
			MaxConcurrency: cfg.ProbeConcurrency,
		}),
		ScheduleExtractor: temporal.NewExtractor(temporal.ExtractorDependencies{}),
	})

	return &Dependencies{
		ClassifyController: controllers.NewClassifyController(controllers.ClassifyControllerDependencies{
			ClassifyService: classifyService,
		}),
	}, nil
}
