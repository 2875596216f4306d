package document

import (
	"context"

	"github.com/jordan/job-tracker/internal/llm"
	"github.com/jordan/job-tracker/internal/prompts"
)

// FromImage transcribes a job posting screenshot through the vision model.
func FromImage(ctx context.Context, client llm.Client, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &EmptyContentError{Source: "image file"}
	}
	if client == nil {
		return "", &llm.MissingCredentialError{Name: "GEMINI_API_KEY"}
	}

	prompt := prompts.MustGet("extraction.json", "vision_instruction")

	text, err := client.GenerateVision(ctx, prompt, mimeType, data)
	if err != nil {
		return "", err
	}

	text = NormalizeText(text)
	if text == "" {
		return "", &EmptyContentError{Source: "image file"}
	}
	return text, nil
}
