// Package assistant talks to the Anthropic messages API and turns free-form
// nutrition questions into a reply plus, when the model suggests a food to
// log, a normalized food record.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/probuilddigital1-star/nourish/internal/model"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1/messages"
	apiVersion     = "2023-06-01"
	defaultModel   = "claude-3-haiku-20240307"
	maxTokens      = 1024
)

const systemPrompt = `You are a nutrition assistant inside a calorie tracking app.
Answer briefly and practically. When the user describes something they ate or
asks you to log a food, append a fenced json block with exactly this shape:

` + "```json" + `
{"food": {"name": "...", "brand": "", "calories": 0, "protein": 0, "carbs": 0, "fat": 0, "serving_size": 1, "serving_unit": "serving"}}
` + "```" + `

Calories and macros are integers for one serving. Omit the block entirely when
no specific food should be logged.`

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Reply is the assistant's answer; Food is set when the model proposed a
// loggable item.
type Reply struct {
	Message string
	Food    *model.FoodRecord
}

// Client defines the chat surface consumed by the CLI.
type Client interface {
	Chat(ctx context.Context, history []Message, message string) (Reply, error)
}

type client struct {
	http  *resty.Client
	model string
}

// New creates a configured assistant client. Model and baseURL fall back to
// defaults when empty.
func New(apiKey, modelName, baseURL string) Client {
	if modelName == "" {
		modelName = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(20 * time.Second)

	return &client{http: httpClient, model: modelName}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []Message `json:"messages"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *client) Chat(ctx context.Context, history []Message, message string) (Reply, error) {
	messages := append(append([]Message(nil), history...), Message{Role: "user", Content: message})

	var parsed messageResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(messageRequest{
			Model:     c.model,
			MaxTokens: maxTokens,
			System:    systemPrompt,
			Messages:  messages,
		}).
		SetResult(&parsed).
		Post("")
	if err != nil {
		return Reply{}, fmt.Errorf("execute assistant request: %w", err)
	}
	if resp.IsError() {
		return Reply{}, fmt.Errorf("assistant request failed with status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(parsed.Content) == 0 {
		return Reply{}, fmt.Errorf("assistant returned empty content")
	}

	text := parsed.Content[0].Text
	reply := Reply{Message: text}
	if food, rest, ok := extractFood(text); ok {
		reply.Food = food
		reply.Message = rest
	}
	return reply, nil
}

type foodEnvelope struct {
	Food *model.FoodRecord `json:"food"`
}

// extractFood pulls the fenced json food block out of the reply text,
// returning the food and the text with the block removed.
func extractFood(text string) (*model.FoodRecord, string, bool) {
	start := strings.Index(text, "```json")
	if start < 0 {
		return nil, text, false
	}
	rest := text[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return nil, text, false
	}

	var envelope foodEnvelope
	if err := json.Unmarshal([]byte(rest[:end]), &envelope); err != nil || envelope.Food == nil {
		return nil, text, false
	}
	if strings.TrimSpace(envelope.Food.Name) == "" {
		return nil, text, false
	}
	envelope.Food.Source = "assistant"

	cleaned := strings.TrimSpace(text[:start] + rest[end+len("```"):])
	return envelope.Food, cleaned, true
}
