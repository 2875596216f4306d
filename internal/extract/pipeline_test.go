package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/job-tracker/internal/document"
	"github.com/jordan/job-tracker/internal/fetch"
	"github.com/jordan/job-tracker/internal/llm"
)

type fakeLLM struct {
	jsonOut    string
	jsonErr    error
	visionOut  string
	gotPrompts []string
	gotSchemas []*llm.ExtractionSchema
}

func (f *fakeLLM) GenerateJSON(_ context.Context, prompt string, schema *llm.ExtractionSchema) (string, error) {
	f.gotPrompts = append(f.gotPrompts, prompt)
	f.gotSchemas = append(f.gotSchemas, schema)
	return f.jsonOut, f.jsonErr
}

func (f *fakeLLM) GenerateVision(_ context.Context, _ string, _ string, _ []byte) (string, error) {
	return f.visionOut, nil
}

func (f *fakeLLM) Close() error { return nil }

const minimalJobJSON = `{"title": "Engineer", "company": "Acme", "jobDetails": "Work."}`

func TestRun_TextInput(t *testing.T) {
	client := &fakeLLM{jsonOut: minimalJobJSON}
	pipeline := NewPipeline(client, nil, Options{})

	job, err := pipeline.Run(context.Background(), Request{Text: "Engineer wanted at Acme."})
	require.NoError(t, err)

	assert.Equal(t, "Engineer", job.Title)
	require.Len(t, client.gotPrompts, 1)
	assert.Contains(t, client.gotPrompts[0], "Engineer wanted at Acme.")
	assert.Contains(t, client.gotPrompts[0], "job posting details extractor")
	require.Len(t, client.gotSchemas, 1)
	assert.Equal(t, "ExtractedJob", client.gotSchemas[0].Name)
}

func TestRun_TruncatesLongInput(t *testing.T) {
	client := &fakeLLM{jsonOut: minimalJobJSON}
	pipeline := NewPipeline(client, nil, Options{MaxChars: 50})

	_, err := pipeline.Run(context.Background(), Request{Text: strings.Repeat("a", 500)})
	require.NoError(t, err)

	require.Len(t, client.gotPrompts, 1)
	assert.NotContains(t, client.gotPrompts[0], strings.Repeat("a", 51))
}

func TestRun_EmptyInput(t *testing.T) {
	client := &fakeLLM{jsonOut: minimalJobJSON}
	pipeline := NewPipeline(client, nil, Options{})

	_, err := pipeline.Run(context.Background(), Request{Text: "   "})
	require.Error(t, err)

	var emptyErr *document.EmptyContentError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Empty(t, client.gotPrompts, "no model call for empty input")
}

func TestRun_MissingModelCredential(t *testing.T) {
	pipeline := NewPipeline(nil, nil, Options{})

	_, err := pipeline.Run(context.Background(), Request{Text: "a posting"})
	require.Error(t, err)

	var credErr *llm.MissingCredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "GEMINI_API_KEY", credErr.Name)
}

func TestRun_URLWithoutFetcher(t *testing.T) {
	pipeline := NewPipeline(&fakeLLM{jsonOut: minimalJobJSON}, nil, Options{})

	_, err := pipeline.Run(context.Background(), Request{URL: "https://example.com/job"})
	require.Error(t, err)

	var credErr *fetch.MissingCredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "SCRAPERAPI_KEY", credErr.Name)
}

func TestRun_URLInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<body><h1>Engineer</h1><p>Acme is hiring.</p></body>"))
	}))
	defer server.Close()

	client := &fakeLLM{jsonOut: minimalJobJSON}
	fetcher := fetch.NewClient("test-key", fetch.Options{Endpoint: server.URL})
	pipeline := NewPipeline(client, fetcher, Options{})

	job, err := pipeline.Run(context.Background(), Request{URL: "https://example.com/job"})
	require.NoError(t, err)

	assert.Equal(t, "Engineer", job.Title)
	require.Len(t, client.gotPrompts, 1)
	assert.Contains(t, client.gotPrompts[0], "Acme is hiring.")
}

func TestRun_URLWithEmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>window.render()</script></body></html>`))
	}))
	defer server.Close()

	client := &fakeLLM{jsonOut: minimalJobJSON}
	fetcher := fetch.NewClient("test-key", fetch.Options{Endpoint: server.URL})
	pipeline := NewPipeline(client, fetcher, Options{})

	_, err := pipeline.Run(context.Background(), Request{URL: "https://example.com/job"})
	require.Error(t, err)

	var emptyErr *document.EmptyContentError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Empty(t, client.gotPrompts, "script-only page must not reach the model")
}

func TestRun_ImageFile(t *testing.T) {
	client := &fakeLLM{jsonOut: minimalJobJSON, visionOut: "Engineer wanted at Acme"}
	pipeline := NewPipeline(client, nil, Options{})

	job, err := pipeline.Run(context.Background(), Request{
		File: &FileInput{Data: []byte{0x89, 0x50}, MimeType: "image/png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Engineer", job.Title)
	require.Len(t, client.gotPrompts, 1)
	assert.Contains(t, client.gotPrompts[0], "Engineer wanted at Acme")
}

func TestRun_UnsupportedFile(t *testing.T) {
	client := &fakeLLM{jsonOut: minimalJobJSON}
	pipeline := NewPipeline(client, nil, Options{})

	_, err := pipeline.Run(context.Background(), Request{
		File: &FileInput{Data: []byte("%PDF-1.4"), MimeType: "application/pdf"},
	})
	require.Error(t, err)

	var formatErr *document.UnsupportedFormatError
	assert.ErrorAs(t, err, &formatErr)
	assert.Empty(t, client.gotPrompts)
}

func TestRun_ModelErrorPropagates(t *testing.T) {
	client := &fakeLLM{jsonErr: &llm.UpstreamError{Status: 500}}
	pipeline := NewPipeline(client, nil, Options{})

	_, err := pipeline.Run(context.Background(), Request{Text: "a posting"})
	require.Error(t, err)

	var upstreamErr *llm.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestRun_DegradedParse(t *testing.T) {
	client := &fakeLLM{jsonOut: "no structured answer"}
	pipeline := NewPipeline(client, nil, Options{})

	job, err := pipeline.Run(context.Background(), Request{Text: "a posting"})
	require.NoError(t, err)
	assert.Equal(t, "no structured answer", job.JobDetails)
}
