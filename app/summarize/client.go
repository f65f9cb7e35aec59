package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	maxPromptContent = 4000
	maxTokens        = 800
)

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ Summarizer = (*Client)(nil)

func NewClient(endpoint, model, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Run produces a summary for the article. It never fails: transport and
// model errors degrade to a fixed placeholder summary so one bad article
// cannot stall a refresh.
func (c *Client) Run(ctx context.Context, title, content string) Summary {
	text, err := c.complete(ctx, title, content)
	if err != nil {
		slog.Error("Summary generation failed", "title", truncate(title, 50), "error", err.Error())
		return Summary{
			Brief:        "Summary generation failed",
			Detailed:     "Unable to generate summary at this time.",
			KeyPoints:    []string{"Error occurred during analysis"},
			Technologies: []string{},
			Degraded:     true,
		}
	}

	return Parse(text, title)
}

func (c *Client) complete(ctx context.Context, title, content string) (string, error) {
	if c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("summarize client misconfigured")
	}

	prompt := buildPrompt(title, truncate(content, maxPromptContent))

	body, err := json.Marshal(map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"max_tokens": maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("chat completion error %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}

	return completion.Choices[0].Message.Content, nil
}

func buildPrompt(title, content string) string {
	return fmt.Sprintf(`Summarize this tech blog article in JSON format.

Title: %s

Content: %s

Return ONLY this JSON (no other text):
{"brief":"2-3 sentence summary","detailed":"detailed summary","keyPoints":["point1","point2","point3"],"technologies":["tech1","tech2"]}`, title, content)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
