package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiReply(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
		},
	})
	return string(b)
}

func TestGeminiClient_GenerateText(t *testing.T) {
	var gotBody map[string]any
	var gotKey, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Write([]byte(geminiReply("hello from the model")))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	out, err := client.GenerateText(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", out)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	assert.Equal(t, "analyze this", parts[0].(map[string]any)["text"])
}

func TestGeminiClient_GenerateWithImage_InlinesData(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Write([]byte(geminiReply("ok")))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.GenerateWithImage(context.Background(), "what is this", []byte{1, 2, 3}, "image/png")
	require.NoError(t, err)

	contents := gotBody["contents"].([]any)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 2)
	inline := parts[1].(map[string]any)["inline_data"].(map[string]any)
	assert.Equal(t, "image/png", inline["mime_type"])
	assert.Equal(t, "AQID", inline["data"]) // base64 of 0x01 0x02 0x03
}

func TestGeminiClient_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.GenerateText(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGeminiClient_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.GenerateText(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty model response")
}

func TestGeminiClient_MissingAPIKey(t *testing.T) {
	client := NewGeminiClient("http://unused", "")
	_, err := client.GenerateText(context.Background(), "hi")
	require.Error(t, err)
}
