package aiclassify

import (
	"fmt"

	"autoledger/internal/config"
	"autoledger/internal/port"
)

// NoSuggestion is the placeholder substituted when the external classifier
// is unavailable, times out, or returns nothing for an entry.
const NoSuggestion = "No suggestion available."

// ProviderFactory is a function that creates an AmbiguityClassifier from a
// classifier config.
type ProviderFactory func(cfg *config.ClassifierConfig) (port.AmbiguityClassifier, error)

// registry of classifier provider factories, populated by init() in each
// provider package or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a classifier provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates an AmbiguityClassifier from a classifier config using the
// registered factory.
func New(cfg *config.ClassifierConfig) (port.AmbiguityClassifier, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown classifier provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// Placeholders returns one no-suggestion placeholder per narration.
func Placeholders(narrations []string) []port.Suggestion {
	out := make([]port.Suggestion, len(narrations))
	for i, n := range narrations {
		out[i] = port.Suggestion{Narration: n, Suggestion: NoSuggestion}
	}
	return out
}
