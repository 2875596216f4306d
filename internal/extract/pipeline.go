package extract

import (
	"context"
	"log"
	"strings"

	"github.com/jordan/job-tracker/internal/document"
	"github.com/jordan/job-tracker/internal/fetch"
	"github.com/jordan/job-tracker/internal/llm"
)

// Options configures pipeline behavior.
type Options struct {
	MaxChars int  // Input text budget; fetch.DefaultMaxChars if zero
	Strict   bool // Fail on unparseable model output instead of degrading
	Verbose  bool // Log normalized input sizes
}

// Pipeline turns a job posting input into a structured Job. The model
// client and the fetcher may be nil when their credentials are not
// configured; the affected operations then fail fast with a
// MissingCredentialError while the rest of the pipeline stays usable.
type Pipeline struct {
	llm     llm.Client
	fetcher *fetch.Client
	opts    Options
}

// NewPipeline creates an extraction pipeline.
func NewPipeline(client llm.Client, fetcher *fetch.Client, opts Options) *Pipeline {
	if opts.MaxChars == 0 {
		opts.MaxChars = fetch.DefaultMaxChars
	}
	return &Pipeline{llm: client, fetcher: fetcher, opts: opts}
}

// Run normalizes the request to plain text, prompts the model with the job
// schema, and parses the structured result.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Job, error) {
	text, err := p.normalize(ctx, req)
	if err != nil {
		return nil, err
	}

	// Fetched pages can sanitize down to nothing; whatever the variant,
	// an empty document never reaches the model.
	if strings.TrimSpace(text) == "" {
		return nil, &document.EmptyContentError{}
	}

	if p.llm == nil {
		return nil, &llm.MissingCredentialError{Name: "GEMINI_API_KEY"}
	}

	text = fetch.Truncate(text, p.opts.MaxChars)
	if p.opts.Verbose {
		log.Printf("[extract] normalized input: %d chars", len(text))
	}

	schema := JobSchema()
	prompt := llm.BuildExtractionPrompt(schema, text)

	raw, err := p.llm.GenerateJSON(ctx, prompt, &schema)
	if err != nil {
		return nil, err
	}

	return ParseJob(raw, p.opts.Strict)
}

// normalize resolves the request to plain text without calling the
// extraction model. Vision transcription for image uploads is the one
// exception since it needs the model to read the screenshot.
func (p *Pipeline) normalize(ctx context.Context, req Request) (string, error) {
	switch {
	case strings.TrimSpace(req.Text) != "":
		return strings.TrimSpace(req.Text), nil
	case req.URL != "":
		if p.fetcher == nil {
			return "", &fetch.MissingCredentialError{Name: "SCRAPERAPI_KEY"}
		}
		return p.fetcher.FetchText(ctx, req.URL)
	case req.File != nil:
		return document.ExtractText(ctx, p.llm, req.File.MimeType, req.File.Data)
	default:
		return "", &document.EmptyContentError{}
	}
}
