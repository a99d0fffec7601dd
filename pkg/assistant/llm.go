package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"trainbot/pkg/validate"
)

const systemPrompt = `You rewrite train search results into friendly chat messages.
Follow these rules strictly:
1. Never use markdown formatting.
2. Never mention internal steps or statuses.
3. Use simple text, emojis are fine.
4. Keep an empty line between trains.
5. Show at most 5 trains.
6. If no trains were found, suggest alternatives clearly.
Keep every train number, time, station code and recommendation exactly as given.`

// LLMFinalizer asks an OpenAI-compatible chat model to polish the plain reply.
// Any failure falls back to the plain text.
type LLMFinalizer struct {
	BaseURL    string
	APIKey     string
	Model      string
	Fallback   Finalizer
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewLLMFinalizer creates a finalizer for the chat-completions API at baseURL.
func NewLLMFinalizer(baseURL, apiKey, model string) *LLMFinalizer {
	return &LLMFinalizer{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		Model:      model,
		Fallback:   PlainFinalizer{},
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Logger:     slog.Default(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (f *LLMFinalizer) Finalize(validation validate.Result, outcome *Outcome) string {
	plain := f.Fallback.Finalize(validation, outcome)
	if outcome == nil {
		// Validation messages are already short and exact
		return plain
	}

	polished, err := f.complete(plain)
	if err != nil {
		f.Logger.Warn("LLM finalize failed, using plain reply", "error", err)
		return plain
	}

	polished = StripMarkdown(polished)
	if strings.TrimSpace(polished) == "" {
		f.Logger.Warn("LLM returned an empty reply, using plain reply")
		return plain
	}
	return polished
}

func (f *LLMFinalizer) complete(content string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: f.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: content},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, f.BaseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.APIKey)

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat API error %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat response")
	}

	return chat.Choices[0].Message.Content, nil
}

var (
	headingPrefix = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	starBullet    = regexp.MustCompile(`(?m)^(\s*)[*+]\s+`)
)

// StripMarkdown removes the markdown a model tends to add despite being told not to.
func StripMarkdown(s string) string {
	s = headingPrefix.ReplaceAllString(s, "")
	s = starBullet.ReplaceAllString(s, "$1- ")
	for _, marker := range []string{"**", "__", "`"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	return strings.TrimSpace(s)
}
