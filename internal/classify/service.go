package classify

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Team-useMemo/Jugger-AI/internal/temporal"
	"github.com/Team-useMemo/Jugger-AI/internal/urlcheck"
	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

const (
	emptySentenceText = "빈 문장"
	urlOnlyText       = "URL 포함 문장"
)

var urlPattern = regexp.MustCompile(`https?://[a-zA-Z0-9./?=&_%:-]+`)

// Service runs the paragraph decomposition pipeline: verify the user, embed
// the paragraph, classify it against the user's categories, then decompose
// each sentence into cleaned text, URL partitions and schedules.
type Service struct {
	embedder   domain.Embedder
	store      domain.CategoryStore
	classifier *Classifier
	urls       *urlcheck.Validator
	schedules  *temporal.Extractor
}

type ServiceDependencies struct {
	Embedder          domain.Embedder
	CategoryStore     domain.CategoryStore
	Classifier        *Classifier
	URLValidator      *urlcheck.Validator
	ScheduleExtractor *temporal.Extractor
}

func NewService(deps ServiceDependencies) *Service {
	return &Service{
		embedder:   deps.Embedder,
		store:      deps.CategoryStore,
		classifier: deps.Classifier,
		urls:       deps.URLValidator,
		schedules:  deps.ScheduleExtractor,
	}
}

// ClassifyParagraph decomposes one paragraph for one user. An unknown user
// fails fast with domain.ErrUserNotFound before any classification work; any
// collaborator failure aborts the pipeline.
func (s *Service) ClassifyParagraph(ctx context.Context, userID, paragraph string) (domain.ClassificationResult, error) {
	exists, err := s.store.UserExists(ctx, userID)
	if err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("failed to verify user: %w", err)
	}
	if !exists {
		return domain.ClassificationResult{}, domain.NewUserNotFoundError(userID)
	}

	paragraphVector, err := s.embedder.Embed(ctx, paragraph)
	if err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("failed to embed paragraph: %w", err)
	}

	categories, err := s.store.CategoriesForUser(ctx, userID)
	if err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("failed to load categories: %w", err)
	}

	if err := s.fillCategoryEmbeddings(ctx, categories); err != nil {
		return domain.ClassificationResult{}, err
	}

	category, recommended, err := s.classifier.Classify(ctx, paragraph, paragraphVector, categories)
	if err != nil {
		return domain.ClassificationResult{}, err
	}

	rawSentences := strings.Split(paragraph, "\n")
	sentences := make([]domain.Sentence, 0, len(rawSentences))
	for _, raw := range rawSentences {
		sentences = append(sentences, s.decomposeSentence(ctx, raw))
	}

	log.Info().
		Str("user_id", userID).
		Str("category", category).
		Int("sentences", len(sentences)).
		Msg("Paragraph classified")

	return domain.ClassificationResult{
		Category:          category,
		RecommendCategory: recommended,
		Sentences:         sentences,
	}, nil
}

// fillCategoryEmbeddings embeds category names that arrived from the store
// without a precomputed vector.
func (s *Service) fillCategoryEmbeddings(ctx context.Context, categories []domain.Category) error {
	for i := range categories {
		if len(categories[i].Embedding) > 0 {
			continue
		}
		vector, err := s.embedder.Embed(ctx, categories[i].Name)
		if err != nil {
			return fmt.Errorf("failed to embed category %q: %w", categories[i].Name, err)
		}
		categories[i].Embedding = vector
	}
	return nil
}

// decomposeSentence fuses cleaned text, URL validation partitions and
// extracted schedules for one newline-delimited sentence.
func (s *Service) decomposeSentence(ctx context.Context, raw string) domain.Sentence {
	found := urlPattern.FindAllString(raw, -1)
	cleaned := strings.TrimSpace(urlPattern.ReplaceAllString(raw, ""))

	valid, invalid := s.urls.Validate(ctx, found)
	schedules := s.schedules.Extract(cleaned)

	text := cleaned
	if text == "" {
		if len(found) > 0 {
			text = urlOnlyText
		} else {
			text = emptySentenceText
		}
	}

	return domain.Sentence{
		Text:        text,
		URLs:        valid,
		InvalidURLs: invalid,
		Schedules:   schedules,
	}
}
