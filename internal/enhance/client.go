// Package enhance provides the LLM-backed text enhancement tier: policy
// cleanup, FAQ extraction and about-page summarization, each with a
// deterministic pattern-matching fallback when the service is unavailable
// or returns unusable output.
package enhance

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/theopenlane/httpsling"
)

const (
	// defaultBaseURL is the root of the Groq OpenAI-compatible API
	defaultBaseURL = "https://api.groq.com/openai/v1"
	// chatCompletionsPath is the chat completions endpoint path
	chatCompletionsPath = "/chat/completions"
	// DefaultModel is the completion model used when none is configured
	DefaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"
	// defaultRequestTimeout bounds a single completion call
	defaultRequestTimeout = 30 * time.Second
	// defaultMaxTokens bounds completion output length
	defaultMaxTokens = 4500
)

// Client calls the Groq chat completions API
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the default API base URL
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimSuffix(url, "/")
		}
	}
}

// WithModel overrides the default completion model
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// New creates a Groq client with the provided API key
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// chatMessage is a single message in a chat completion exchange
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the chat completions request body
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// chatResponse is the subset of the completions response the tier consumes
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a single-user-message completion request and returns the
// trimmed completion text.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	body := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   defaultMaxTokens,
	}

	requester := httpsling.MustNew(
		httpsling.URL(c.baseURL+chatCompletionsPath),
		httpsling.Post(),
		httpsling.BearerAuth(c.apiKey),
		httpsling.Body(body),
		httpsling.WithDoer(c.httpClient),
	)

	var completion chatResponse

	resp, err := requester.ReceiveWithContext(ctx, &completion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
