package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

type fakeTokenizer struct {
	tokens []domain.Token
	err    error
}

func (f *fakeTokenizer) Tokenize(context.Context, string) ([]domain.Token, error) {
	return f.tokens, f.err
}

type fakeKeyphrases struct {
	phrases  []string
	gotNouns []string
	gotTopK  int
}

func (f *fakeKeyphrases) ExtractKeyphrases(_ context.Context, nouns []string, topK int) ([]string, error) {
	f.gotNouns = nouns
	f.gotTopK = topK
	if len(nouns) == 0 {
		return []string{domain.FallbackKeyword}, nil
	}
	return f.phrases, nil
}

func TestClassifyNoCategories(t *testing.T) {
	keyphrases := &fakeKeyphrases{phrases: []string{"회의", "발표", "준비"}}
	c := NewClassifier(ClassifierDependencies{
		Tokenizer: &fakeTokenizer{tokens: []domain.Token{
			{Form: "회의", Tag: "NNG"},
			{Form: "하다", Tag: "VV"},
			{Form: "발표", Tag: "NNG"},
			{Form: "준비", Tag: "NNG"},
		}},
		Keyphrases: keyphrases,
	})

	category, recommended, err := c.Classify(context.Background(), "회의하고 발표 준비", []float32{1, 0}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryNone, category)
	assert.Equal(t, []string{"회의", "발표", "준비"}, recommended)
	assert.NotEmpty(t, recommended)

	// only noun-tagged tokens reach the keyphrase extractor
	assert.Equal(t, []string{"회의", "발표", "준비"}, keyphrases.gotNouns)
	assert.Equal(t, 3, keyphrases.gotTopK)
}

func TestClassifyAboveThreshold(t *testing.T) {
	c := NewClassifier(ClassifierDependencies{
		Tokenizer:  &fakeTokenizer{},
		Keyphrases: &fakeKeyphrases{},
		Threshold:  0.5,
	})

	categories := []domain.Category{
		{Name: "일정", Embedding: []float32{0, 1}},
		{Name: "공부", Embedding: []float32{1, 0}},
	}

	category, recommended, err := c.Classify(context.Background(), "문단", []float32{1, 0}, categories)
	require.NoError(t, err)

	assert.Equal(t, "공부", category)
	assert.Equal(t, []string{"공부"}, recommended)
}

func TestClassifyBelowThreshold(t *testing.T) {
	c := NewClassifier(ClassifierDependencies{
		Tokenizer:  &fakeTokenizer{tokens: []domain.Token{{Form: "장보기", Tag: "NNG"}}},
		Keyphrases: &fakeKeyphrases{phrases: []string{"장보기"}},
		Threshold:  0.5,
	})

	categories := []domain.Category{
		{Name: "일정", Embedding: []float32{0, 1}},
	}

	category, recommended, err := c.Classify(context.Background(), "장보기", []float32{1, 0}, categories)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryNone, category)
	assert.Equal(t, []string{"장보기"}, recommended)
}

func TestClassifyTieKeepsFirstCategory(t *testing.T) {
	c := NewClassifier(ClassifierDependencies{
		Tokenizer:  &fakeTokenizer{},
		Keyphrases: &fakeKeyphrases{},
		Threshold:  0.5,
	})

	categories := []domain.Category{
		{Name: "먼저", Embedding: []float32{1, 0}},
		{Name: "나중", Embedding: []float32{1, 0}},
	}

	category, _, err := c.Classify(context.Background(), "문단", []float32{1, 0}, categories)
	require.NoError(t, err)

	assert.Equal(t, "먼저", category)
}

func TestClassifyNoNounsFallback(t *testing.T) {
	keyphrases := &fakeKeyphrases{}
	c := NewClassifier(ClassifierDependencies{
		Tokenizer:  &fakeTokenizer{tokens: []domain.Token{{Form: "하다", Tag: "VV"}}},
		Keyphrases: keyphrases,
	})

	category, recommended, err := c.Classify(context.Background(), "하다", []float32{1, 0}, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryNone, category)
	assert.Equal(t, []string{domain.FallbackKeyword}, recommended)
	assert.Empty(t, keyphrases.gotNouns)
}
