package llm

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// GeminiClient implements domain.GenerationClient on Vertex AI (Gemini).
type GeminiClient struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// GeminiOptions configures a GeminiClient.
type GeminiOptions struct {
	Project         string
	Location        string
	Model           string
	Temperature     float32
	MaxOutputTokens int
}

func NewGeminiClient(ctx context.Context, opts GeminiOptions) (*GeminiClient, error) {
	if opts.Project == "" || opts.Location == "" {
		return nil, domain.NewGenerationError(domain.GenerationConfiguration,
			"GCP project and location must be set for the Gemini provider", nil)
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  opts.Project,
		Location: opts.Location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, domain.NewGenerationError(domain.GenerationConfiguration,
			"creating Vertex AI client: "+err.Error(), err)
	}

	return &GeminiClient{
		client:          client,
		model:           opts.Model,
		temperature:     opts.Temperature,
		maxOutputTokens: int32(opts.MaxOutputTokens),
	}, nil
}

// turnRole maps a conversation speaker onto the genai role vocabulary.
func turnRole(t domain.Turn) genai.Role {
	if t.Speaker == domain.RoleAssistant {
		return genai.RoleModel
	}
	return genai.RoleUser
}

// Generate maps the turn history onto genai contents, with the instruction
// as the system directive.
func (c *GeminiClient) Generate(ctx context.Context, instruction string, turns []domain.Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		contents = append(contents, genai.NewContentFromText(t.Text, turnRole(t)))
	}

	temp := c.temperature
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instruction, genai.RoleUser),
		Temperature:       &temp,
		MaxOutputTokens:   c.maxOutputTokens,
	}

	res, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", domain.NewGenerationError(domain.GenerationEmpty,
			"Gemini returned an empty response", nil)
	}
	return text, nil
}
