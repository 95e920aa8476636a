package aiclassify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoledger/internal/config"
	"autoledger/internal/port"
)

type fakeClassifier struct{}

func (f *fakeClassifier) Classify(_ context.Context, narrations []string) ([]port.Suggestion, error) {
	return Placeholders(narrations), nil
}

func TestNew_RegisteredProvider(t *testing.T) {
	RegisterProvider("fake", func(_ *config.ClassifierConfig) (port.AmbiguityClassifier, error) {
		return &fakeClassifier{}, nil
	})

	c, err := New(&config.ClassifierConfig{Provider: "fake"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(&config.ClassifierConfig{Provider: "does-not-exist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestPlaceholders(t *testing.T) {
	out := Placeholders([]string{"entry one", "entry two"})
	require.Len(t, out, 2)
	assert.Equal(t, "entry one", out[0].Narration)
	assert.Equal(t, NoSuggestion, out[0].Suggestion)
	assert.Empty(t, out[0].Label)
}

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("sonar", assert.AnError, 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
	assert.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, 30*time.Second, ParseRetryAfter("30"))
	assert.Equal(t, time.Duration(0), ParseRetryAfter(""))
	assert.Equal(t, time.Duration(0), ParseRetryAfter("soon"))
	assert.Equal(t, time.Duration(0), ParseRetryAfter("-5"))
}
