package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ModelClient is the boundary to the external text/vision model. The reply is
// free text that is expected to contain a JSON payload somewhere; extraction
// and parsing are the caller's job.
type ModelClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// GeminiClient calls the generateContent REST endpoint directly.
type GeminiClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewGeminiClient(endpoint, apiKey string) *GeminiClient {
	return &GeminiClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, []geminiPart{{Text: prompt}})
}

func (g *GeminiClient) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return g.generate(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	})
}

func (g *GeminiClient) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("model API key not set")
	}

	requestBody := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.1,
			"maxOutputTokens": 4096,
		},
	}

	b, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal model request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", g.endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create model request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call model API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse model response JSON: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("model API error: %s", out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}
