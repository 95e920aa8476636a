// Package noop provides a disabled AmbiguityClassifier that returns
// placeholder suggestions, used when no AI service is configured.
package noop

import (
	"context"

	"autoledger/internal/aiclassify"
	"autoledger/internal/config"
	"autoledger/internal/port"
)

func init() {
	aiclassify.RegisterProvider("noop", func(_ *config.ClassifierConfig) (port.AmbiguityClassifier, error) {
		return &Classifier{}, nil
	})
}

// Classifier is a no-op implementation of port.AmbiguityClassifier.
type Classifier struct{}

// Classify returns a placeholder suggestion per narration.
func (c *Classifier) Classify(_ context.Context, narrations []string) ([]port.Suggestion, error) {
	return aiclassify.Placeholders(narrations), nil
}
