package llm

import (
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"google.golang.org/genai"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// classifyOpenAIError maps SDK errors onto the GenerationError taxonomy.
// Provider-reported failures become Upstream with the provider message
// passed through; everything else is a transport failure.
func classifyOpenAIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		msg := apierr.Message
		if msg == "" {
			msg = fmt.Sprintf("OpenAI request failed with status %d", apierr.StatusCode)
		}
		return domain.NewGenerationError(domain.GenerationUpstream, msg, err)
	}
	return domain.NewGenerationError(domain.GenerationTransport,
		"failed to reach OpenAI: "+err.Error(), err)
}

// classifyGeminiError does the same for the genai SDK.
func classifyGeminiError(err error) error {
	var apierr genai.APIError
	if errors.As(err, &apierr) {
		msg := apierr.Message
		if msg == "" {
			msg = fmt.Sprintf("Gemini request failed with code %d", apierr.Code)
		}
		return domain.NewGenerationError(domain.GenerationUpstream, msg, err)
	}
	return domain.NewGenerationError(domain.GenerationTransport,
		"failed to reach Gemini: "+err.Error(), err)
}
