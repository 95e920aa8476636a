package port

import "context"

// Suggestion is a best-effort classification for one ambiguous narration.
type Suggestion struct {
	Narration  string `json:"narration"`
	Label      string `json:"label,omitempty"`
	Suggestion string `json:"ai_suggestion"`
}

// AmbiguityClassifier abstracts the external AI service that classifies
// statement entries the core parser could not handle. Implementations must
// tolerate any batch size the caller submits; the caller bounds it.
type AmbiguityClassifier interface {
	Classify(ctx context.Context, narrations []string) ([]Suggestion, error)
}
