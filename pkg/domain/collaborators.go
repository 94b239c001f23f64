package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserNotFound is returned when the requested user does not exist in
	// the category store. Wrap with the offending id via NewUserNotFoundError.
	ErrUserNotFound = errors.New("user not found")
)

// NewUserNotFoundError wraps ErrUserNotFound with the offending user id.
func NewUserNotFoundError(userID string) error {
	return fmt.Errorf("user %q: %w", userID, ErrUserNotFound)
}

// Embedder produces a fixed-length vector for a text. Deterministic within a
// process lifetime: the same input yields the same vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// KeyphraseExtractor ranks phrases built from noun tokens. It may return fewer
// than topK phrases, never more.
type KeyphraseExtractor interface {
	ExtractKeyphrases(ctx context.Context, nounTokens []string, topK int) ([]string, error)
}

// Token is a surface form with its part-of-speech tag.
type Token struct {
	Form string `json:"form"`
	Tag  string `json:"tag"`
}

// IsNoun reports whether the token carries a noun tag (NNG, NNP, NNB, ...).
func (t Token) IsNoun() bool {
	return strings.HasPrefix(t.Tag, "NN")
}

// POSTokenizer splits text into part-of-speech tagged tokens.
type POSTokenizer interface {
	Tokenize(ctx context.Context, text string) ([]Token, error)
}

// CategoryStore is the read-only view of the persisted user/category data.
// Iteration order of CategoriesForUser is insertion order.
type CategoryStore interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	CategoriesForUser(ctx context.Context, userID string) ([]Category, error)
}
