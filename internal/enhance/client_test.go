package enhance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	client, err := New("")

	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, client)
}

func TestNew_AppliesOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("http://localhost:9999/"),
		WithModel("test-model"),
	)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", client.baseURL)
	assert.Equal(t, "test-model", client.model)
}

func TestComplete_SendsChatRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, chatCompletionsPath, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		assert.Equal(t, DefaultModel, req.Model)
		assert.InDelta(t, 0.2, req.Temperature, 0.001)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "summarize this", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  a summary  "}}]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	got, err := client.Complete(context.Background(), "summarize this", 0.2)
	require.NoError(t, err)

	assert.Equal(t, "a summary", got, "completion text is trimmed")
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt", 0.1)

	require.ErrorIs(t, err, ErrEmptyCompletion)
}
