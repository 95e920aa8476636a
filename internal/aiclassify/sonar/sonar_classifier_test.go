package sonar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoledger/internal/aiclassify"
	"autoledger/internal/config"
)

func testConfig() *config.ClassifierConfig {
	return &config.ClassifierConfig{
		Provider:    "sonar",
		APIKey:      "test-key",
		Model:       "sonar-pro",
		TimeoutSecs: 5,
		MaxEntries:  10,
	}
}

func chatResponse(content string) string {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestClassify_JSONArrayContent(t *testing.T) {
	content := `[{"narration":"ignored","label":"reversal","ai_suggestion":"Failed UPI transfer reversal"}]`

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sonar-pro", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatResponse(content)))
	}))
	defer server.Close()

	c := NewClassifierWithEndpoint(testConfig(), server.URL)
	suggestions, err := c.Classify(context.Background(), []string{"17 Jan 2024 REVERSAL PENDING"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	require.Len(t, suggestions, 1)
	// Narration is realigned to the input, not trusted from the model.
	assert.Equal(t, "17 Jan 2024 REVERSAL PENDING", suggestions[0].Narration)
	assert.Equal(t, "reversal", suggestions[0].Label)
	assert.Equal(t, "Failed UPI transfer reversal", suggestions[0].Suggestion)
}

func TestClassify_ShortAnswerPaddedWithPlaceholders(t *testing.T) {
	content := `[{"label":"reversal","ai_suggestion":"Reversal"}]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(content)))
	}))
	defer server.Close()

	c := NewClassifierWithEndpoint(testConfig(), server.URL)
	suggestions, err := c.Classify(context.Background(), []string{"first entry", "second entry"})
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "Reversal", suggestions[0].Suggestion)
	assert.Equal(t, aiclassify.NoSuggestion, suggestions[1].Suggestion)
	assert.Equal(t, "second entry", suggestions[1].Narration)
}

func TestClassify_NonJSONContentFallsBackToLines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse("probably a reversal\n\n")))
	}))
	defer server.Close()

	c := NewClassifierWithEndpoint(testConfig(), server.URL)
	suggestions, err := c.Classify(context.Background(), []string{"first entry", "second entry"})
	require.NoError(t, err)

	require.Len(t, suggestions, 2)
	assert.Equal(t, "probably a reversal", suggestions[0].Suggestion)
	assert.Equal(t, aiclassify.NoSuggestion, suggestions[1].Suggestion)
}

func TestClassify_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClassifierWithEndpoint(testConfig(), server.URL)
	_, err := c.Classify(context.Background(), []string{"entry"})
	require.Error(t, err)

	var rle *aiclassify.RateLimitError
	require.True(t, errors.As(err, &rle))
	assert.Equal(t, "sonar", rle.Provider)
	assert.Equal(t, float64(30), rle.RetryAfter.Seconds())
}

func TestClassify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClassifierWithEndpoint(testConfig(), server.URL)
	_, err := c.Classify(context.Background(), []string{"entry"})
	require.Error(t, err)

	var rle *aiclassify.RateLimitError
	assert.False(t, errors.As(err, &rle))
	assert.Contains(t, err.Error(), "status 500")
}

func TestClassify_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.APIKey = ""

	c := NewClassifierWithEndpoint(cfg, "http://unused.invalid")
	_, err := c.Classify(context.Background(), []string{"entry"})
	assert.Error(t, err)
}

func TestClassify_NoNarrations(t *testing.T) {
	c := NewClassifierWithEndpoint(testConfig(), "http://unused.invalid")
	suggestions, err := c.Classify(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, suggestions)
}
