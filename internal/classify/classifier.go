package classify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Team-useMemo/Jugger-AI/internal/embeddings"
	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

const (
	// DefaultThreshold is the minimum cosine similarity for assigning an
	// existing category.
	DefaultThreshold = 0.5

	recommendationCount = 3
)

// Classifier decides between an existing category and a keyword
// recommendation for a paragraph.
type Classifier struct {
	tokenizer  domain.POSTokenizer
	keyphrases domain.KeyphraseExtractor
	threshold  float64
}

type ClassifierDependencies struct {
	Tokenizer  domain.POSTokenizer
	Keyphrases domain.KeyphraseExtractor
	Threshold  float64
}

func NewClassifier(deps ClassifierDependencies) *Classifier {
	if deps.Threshold <= 0 {
		deps.Threshold = DefaultThreshold
	}
	return &Classifier{
		tokenizer:  deps.Tokenizer,
		keyphrases: deps.Keyphrases,
		threshold:  deps.Threshold,
	}
}

// Classify compares the paragraph embedding against every category's name
// embedding and picks the best match. Below-threshold or absent categories
// fall back to recommending keywords extracted from the paragraph's nouns.
// The scan uses strict >, so the first category keeps the best score on ties.
func (c *Classifier) Classify(ctx context.Context, paragraph string, paragraphVector []float32, categories []domain.Category) (string, []string, error) {
	if len(categories) == 0 {
		recommended, err := c.recommendKeywords(ctx, paragraph)
		if err != nil {
			return "", nil, err
		}
		return domain.CategoryNone, recommended, nil
	}

	bestName, bestSimilarity := "", 0.0
	for _, category := range categories {
		similarity := embeddings.CosineSimilarity(paragraphVector, category.Embedding)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			bestName = category.Name
		}
	}

	log.Debug().
		Str("best_category", bestName).
		Float64("similarity", bestSimilarity).
		Msg("Scored paragraph against categories")

	if bestSimilarity >= c.threshold {
		return bestName, []string{bestName}, nil
	}

	recommended, err := c.recommendKeywords(ctx, paragraph)
	if err != nil {
		return "", nil, err
	}
	return domain.CategoryNone, recommended, nil
}

// recommendKeywords extracts the paragraph's noun tokens and ranks keyphrases
// over them.
func (c *Classifier) recommendKeywords(ctx context.Context, paragraph string) ([]string, error) {
	tokens, err := c.tokenizer.Tokenize(ctx, paragraph)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize paragraph: %w", err)
	}

	var nouns []string
	for _, token := range tokens {
		if token.IsNoun() {
			nouns = append(nouns, token.Form)
		}
	}

	return c.keyphrases.ExtractKeyphrases(ctx, nouns, recommendationCount)
}
