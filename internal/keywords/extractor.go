package keywords

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Team-useMemo/Jugger-AI/internal/embeddings"
	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

// Extractor ranks candidate keyphrases built from noun tokens by their
// embedding similarity to the full noun sequence, the way KeyBERT ranks
// n-gram candidates against the document. Phrases are 1-2 tokens long.
type Extractor struct {
	embedder domain.Embedder
}

type ExtractorDependencies struct {
	Embedder domain.Embedder
}

func NewExtractor(deps ExtractorDependencies) *Extractor {
	return &Extractor{embedder: deps.Embedder}
}

type scoredPhrase struct {
	phrase string
	score  float64
}

// ExtractKeyphrases returns up to topK phrases ranked by similarity to the
// whole token sequence. No noun tokens yields the fallback keyword.
func (e *Extractor) ExtractKeyphrases(ctx context.Context, nounTokens []string, topK int) ([]string, error) {
	if len(nounTokens) == 0 {
		return []string{domain.FallbackKeyword}, nil
	}

	document := strings.Join(nounTokens, " ")
	docVector, err := e.embedder.Embed(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("failed to embed keyword document: %w", err)
	}

	candidates := buildCandidates(nounTokens)

	scored := make([]scoredPhrase, 0, len(candidates))
	for _, candidate := range candidates {
		vector, err := e.embedder.Embed(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to embed candidate %q: %w", candidate, err)
		}
		scored = append(scored, scoredPhrase{
			phrase: candidate,
			score:  embeddings.CosineSimilarity(docVector, vector),
		})
	}

	// Stable keeps candidate order on score ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if topK > len(scored) {
		topK = len(scored)
	}
	phrases := make([]string, 0, topK)
	for _, s := range scored[:topK] {
		phrases = append(phrases, s.phrase)
	}
	if len(phrases) == 0 {
		return []string{domain.FallbackKeyword}, nil
	}
	return phrases, nil
}

// buildCandidates produces deduplicated 1- and 2-token phrases in first-seen
// order.
func buildCandidates(tokens []string) []string {
	seen := make(map[string]struct{})
	var candidates []string

	add := func(phrase string) {
		if _, ok := seen[phrase]; ok {
			return
		}
		seen[phrase] = struct{}{}
		candidates = append(candidates, phrase)
	}

	for _, token := range tokens {
		add(token)
	}
	for i := 0; i+1 < len(tokens); i++ {
		add(tokens[i] + " " + tokens[i+1])
	}
	return candidates
}
