// Package sonar implements port.AmbiguityClassifier against the Perplexity
// chat-completions API.
package sonar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"autoledger/internal/aiclassify"
	"autoledger/internal/config"
	"autoledger/internal/port"
)

const apiURL = "https://api.perplexity.ai/chat/completions"

const systemPrompt = "You are a financial statement classification expert."

func init() {
	aiclassify.RegisterProvider("sonar", func(cfg *config.ClassifierConfig) (port.AmbiguityClassifier, error) {
		return NewClassifier(cfg), nil
	})
}

// Classifier calls the Perplexity chat-completions API to label bank
// statement entries the core parser flagged as ambiguous.
type Classifier struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClassifier creates a Sonar-based classifier from a classifier config.
func NewClassifier(cfg *config.ClassifierConfig) *Classifier {
	return newClassifier(cfg, apiURL)
}

// NewClassifierWithEndpoint creates a classifier pointing at a custom API
// endpoint (for testing).
func NewClassifierWithEndpoint(cfg *config.ClassifierConfig, endpoint string) *Classifier {
	return newClassifier(cfg, endpoint)
}

func newClassifier(cfg *config.ClassifierConfig, endpoint string) *Classifier {
	model := cfg.Model
	if model == "" {
		model = "sonar-pro"
	}
	timeout := cfg.Timeout()
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Classifier{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Classify submits the narrations in a single prompt and maps the model's
// answer back onto the input order. A malformed answer degrades to a
// line-per-narration split, then to placeholders; missing indexes get the
// no-suggestion placeholder.
func (c *Classifier) Classify(ctx context.Context, narrations []string) ([]port.Suggestion, error) {
	if len(narrations) == 0 {
		return nil, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("sonar API key not configured")
	}

	reqBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildPrompt(narrations)},
		},
		"max_tokens":  1000,
		"temperature": 0.1,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling perplexity API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("perplexity API error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := aiclassify.ParseRetryAfter(resp.Header.Get("Retry-After"))
			return nil, aiclassify.NewRateLimitError("sonar", baseErr, retryAfter)
		}
		return nil, baseErr
	}

	return parseResponse(respBody, narrations)
}

func buildPrompt(narrations []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Classify the following bank statement entries. For each entry, determine if it is income, expense, transfer, or other. Return as a JSON array with 'narration', 'label', and 'ai_suggestion' keys.\n\n")
	for _, n := range narrations {
		fmt.Fprintf(&sb, "- '%s'\n", n)
	}
	return sb.String()
}

// apiResponse models the chat-completions response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func parseResponse(body []byte, narrations []string) ([]port.Suggestion, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API")
	}

	content := resp.Choices[0].Message.Content

	// Preferred shape: a JSON array matching the prompt contract.
	var parsed []port.Suggestion
	if err := json.Unmarshal([]byte(content), &parsed); err == nil && len(parsed) > 0 {
		return alignToInput(parsed, narrations), nil
	}

	// Fallback: treat each response line as the suggestion for the
	// narration at the same index.
	lines := strings.Split(strings.TrimSpace(content), "\n")
	out := make([]port.Suggestion, len(narrations))
	for i, n := range narrations {
		suggestion := aiclassify.NoSuggestion
		if i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			suggestion = strings.TrimSpace(lines[i])
		}
		out[i] = port.Suggestion{Narration: n, Suggestion: suggestion}
	}
	return out, nil
}

// alignToInput pads or trims the model's answer to one suggestion per input
// narration, substituting placeholders for missing indexes.
func alignToInput(parsed []port.Suggestion, narrations []string) []port.Suggestion {
	out := make([]port.Suggestion, len(narrations))
	for i, n := range narrations {
		if i < len(parsed) {
			out[i] = parsed[i]
			out[i].Narration = n
			if out[i].Suggestion == "" {
				out[i].Suggestion = aiclassify.NoSuggestion
			}
			continue
		}
		out[i] = port.Suggestion{Narration: n, Suggestion: aiclassify.NoSuggestion}
	}
	return out
}
