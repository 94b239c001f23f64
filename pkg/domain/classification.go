package domain

import "time"

// CategoryNone is returned when no existing category matched the paragraph.
const CategoryNone = "no"

// FallbackKeyword is recommended when the paragraph contains no noun tokens.
const FallbackKeyword = "기타"

// Category is a user-owned label with an optional precomputed name embedding.
// Categories are read-only to this service; they live in the category store.
type Category struct {
	Name      string    `json:"name" bson:"name"`
	UserID    string    `json:"user_uuid" bson:"user_uuid"`
	Embedding []float32 `json:"embedding,omitempty" bson:"embedding,omitempty"`
}

// Schedule is a temporal expression extracted from a sentence, resolved to
// timezone-aware timestamps in Asia/Seoul.
type Schedule struct {
	Raw       string     `json:"raw"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Task      string     `json:"task"`
}

// Sentence is one newline-delimited span of the input paragraph after
// decomposition.
type Sentence struct {
	Text        string     `json:"text"`
	URLs        []string   `json:"urls"`
	InvalidURLs []string   `json:"invalid_urls"`
	Schedules   []Schedule `json:"schedules"`
}

// ClassificationResult is the complete decomposition of one paragraph.
type ClassificationResult struct {
	Category          string     `json:"category"`
	RecommendCategory []string   `json:"recommend_category"`
	Sentences         []Sentence `json:"sentences"`
}
