package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	dansk "github.com/itsmemarly/Danish-language-tool"
	"github.com/sashabaranov/go-openai"
)

// OpenAISuggester implements Suggester using OpenAI's API. It turns the
// heuristic token-by-token draft into fluent English while staying faithful
// to the learner's Danish sentence.
type OpenAISuggester struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI suggester.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAISuggester creates a new OpenAI suggester.
func NewOpenAISuggester(cfg OpenAIConfig) *OpenAISuggester {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAISuggester{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Model returns the configured model name.
func (p *OpenAISuggester) Model() string {
	return p.model
}

// Suggest produces a fluent English rendering of the Danish sentence.
func (p *OpenAISuggester) Suggest(ctx context.Context, req SuggestRequest) (string, error) {
	if strings.TrimSpace(req.Sentence) == "" {
		return "", nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &dansk.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &dansk.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content)
}

func (p *OpenAISuggester) buildSystemPrompt(req SuggestRequest) string {
	prompt := `# Role
You are a translator helping a Danish learner. You translate the learner's Danish sentence into natural English.

# Rules
- Translate the Danish sentence, not the draft. The draft is a word-by-word gloss and may be clumsy; use it only as a hint.
- Keep the translation simple and literal enough that the learner can map it back to their sentence.
- If the sentence contains a word you cannot place, keep it verbatim in the output.
- Do not correct the learner's grammar silently; translate what they wrote.`

	if len(req.Glossary) > 0 {
		prompt += "\n\n# Glossary\nWhen you encounter these Danish words, prefer these translations:"
		for source, target := range req.Glossary {
			prompt += fmt.Sprintf("\n- %q → %s", source, target)
		}
	}

	prompt += `

# Format
Return a valid JSON object with a single key "translation" containing the English sentence.
Example: { "translation": "I am eating an apple." }
- Do NOT wrap in Markdown code blocks.`

	return prompt
}

func (p *OpenAISuggester) buildUserMessage(req SuggestRequest) string {
	msg := map[string]interface{}{
		"sentence": req.Sentence,
		"draft":    req.Draft,
	}
	if len(req.Unknown) > 0 {
		msg["unknown_words"] = req.Unknown
	}

	data, _ := json.Marshal(msg)
	return string(data)
}

func (p *OpenAISuggester) parseResponse(content string) (string, error) {
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		if translation, ok := objResult["translation"].(string); ok {
			return strings.TrimSpace(translation), nil
		}
		// Fallback: first string value
		for _, v := range objResult {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s), nil
			}
		}
	}

	return "", &dansk.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAISuggester implements Suggester
var _ Suggester = (*OpenAISuggester)(nil)
