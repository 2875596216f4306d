package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateJSON generates schema-constrained JSON from a text prompt.
	// The schema may be nil for free-form JSON output.
	GenerateJSON(ctx context.Context, prompt string, schema *ExtractionSchema) (string, error)
	// GenerateVision generates free text from a prompt plus an inline image
	GenerateVision(ctx context.Context, prompt string, mimeType string, data []byte) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return NewGeminiClient(ctx, config, apiKey)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
	sleep  sleepFunc
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string, opts ...option.ClientOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &MissingCredentialError{Name: "GEMINI_API_KEY"}
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		sleep:  contextSleep,
	}, nil
}

// GenerateJSON generates JSON content constrained by the given schema
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema *ExtractionSchema) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"
	if schema != nil {
		model.ResponseSchema = schema.toGenaiSchema()
	}

	resp, err := c.generateWithBackoff(ctx, model, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return "", err
	}

	// Clean any markdown code block wrappers
	return CleanJSONBlock(text), nil
}

// GenerateVision generates free text from a prompt and an inline image
func (c *GeminiClient) GenerateVision(ctx context.Context, prompt string, mimeType string, data []byte) (string, error) {
	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(0.1)

	resp, err := c.generateWithBackoff(ctx, model,
		genai.Text(prompt),
		genai.Blob{MIMEType: mimeType, Data: data},
	)
	if err != nil {
		return "", err
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// generateWithBackoff runs one content generation under the retry policy
func (c *GeminiClient) generateWithBackoff(ctx context.Context, model *genai.GenerativeModel, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	return callWithBackoff(ctx, c.config.Retry, c.sleep, func() (*genai.GenerateContentResponse, error) {
		return model.GenerateContent(ctx, parts...)
	})
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &NoCandidateError{}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &NoCandidateError{}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &NoCandidateError{}
	}

	return strings.Join(parts, ""), nil
}
