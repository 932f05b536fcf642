package ai

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiClient is the concrete Interpreter backed by any OpenAI-compatible
// chat-completion endpoint. Pointing BaseURL at a DeepSeek-style provider
// works unchanged — only the model name differs.
type openaiClient struct {
	api   *openai.Client
	model string
}

// NewOpenAIClient returns an Interpreter that calls an OpenAI-compatible API.
// An empty baseURL uses the official OpenAI endpoint.
func NewOpenAIClient(baseURL, apiKey, model string) Interpreter {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &openaiClient{
		api:   openai.NewClientWithConfig(config),
		model: model,
	}
}

const systemPrompt = `You write short, supportive summaries of wellbeing questionnaire results.
You are given the questionnaire title, its category, the numeric score, the matched
interpretive range, and the risk tier. Respond with JSON: {"summary": "..."}.
The summary is 2-3 plain sentences. Do not diagnose, do not prescribe, do not
mention the numeric thresholds. Encourage professional follow-up for high and
critical tiers.`

// narrativePayload is the JSON shape the model is asked to return.
type narrativePayload struct {
	Summary string `json:"summary"`
}

// Interpret asks the model for a short plain-language summary of the result.
func (c *openaiClient) Interpret(ctx context.Context, p InterpretParams) (Narrative, error) {
	user := fmt.Sprintf(
		"Questionnaire: %s\nCategory: %s\nScore: %.2f\nRange: %s\nRange interpretation: %s\nRisk tier: %s",
		p.QuestionnaireTitle, p.Category, p.RawScore, p.RangeName, p.Interpretation, p.Tier,
	)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	})
	if err != nil {
		return Narrative{}, fmt.Errorf("ai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Narrative{}, fmt.Errorf("ai: model returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	var payload narrativePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return Narrative{}, fmt.Errorf("ai: parse model response: %w (raw: %s)", err, raw)
	}
	if payload.Summary == "" {
		return Narrative{}, fmt.Errorf("ai: model returned empty summary")
	}

	return Narrative{Summary: payload.Summary}, nil
}
