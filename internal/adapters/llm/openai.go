package llm

import (
	"context"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// OpenAIClient implements domain.GenerationClient using the official
// openai-go SDK (chat completions).
type OpenAIClient struct {
	client          openai.Client
	model           string
	temperature     float64
	maxOutputTokens int64
}

// OpenAIOptions configures an OpenAIClient.
type OpenAIOptions struct {
	APIKey          string
	Model           string
	BaseURL         string
	Temperature     float32
	MaxOutputTokens int
}

// NewOpenAIClient validates credentials and builds the client. A missing
// API key is a configuration failure, reported here rather than on the
// first request.
func NewOpenAIClient(opts OpenAIOptions) (*OpenAIClient, error) {
	if opts.APIKey == "" {
		return nil, domain.NewGenerationError(domain.GenerationConfiguration,
			"OpenAI API key is not configured", nil)
	}
	if opts.Model == "" {
		opts.Model = "gpt-4o-mini"
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &OpenAIClient{
		client:          openai.NewClient(reqOpts...),
		model:           opts.Model,
		temperature:     float64(opts.Temperature),
		maxOutputTokens: int64(opts.MaxOutputTokens),
	}, nil
}

// Generate sends the instruction as the system message followed by the turn
// history and returns the completion text.
func (c *OpenAIClient) Generate(ctx context.Context, instruction string, turns []domain.Turn) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns)+1)
	msgs = append(msgs, openai.SystemMessage(instruction))
	for _, t := range turns {
		switch t.Speaker {
		case domain.RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(t.Text))
		default:
			msgs = append(msgs, openai.UserMessage(t.Text))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: msgs,
	}
	if c.temperature > 0 {
		params.Temperature = openai.Float(c.temperature)
	}
	if c.maxOutputTokens > 0 {
		params.MaxTokens = openai.Int(c.maxOutputTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return "", domain.NewGenerationError(domain.GenerationEmpty,
			"OpenAI returned no choices", nil)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", domain.NewGenerationError(domain.GenerationEmpty,
			"OpenAI returned an empty response", nil)
	}
	return text, nil
}
