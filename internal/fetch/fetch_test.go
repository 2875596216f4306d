package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-key", Options{Endpoint: server.URL})
	return client, server
}

func TestFetchText_Success(t *testing.T) {
	var gotQuery map[string][]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><style>body{color:red}</style></head>
			<body><script>alert("x")</script><h1>Backend   Engineer</h1><p>Go required.</p></body></html>`))
	})

	text, err := client.FetchText(context.Background(), "https://example.com/job/123")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer Go required.", text)
	assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
	assert.Equal(t, []string{"https://example.com/job/123"}, gotQuery["url"])
}

func TestFetchText_StripsScriptAndStyleContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<body><script>var secret = 1;</script><style>.x{}</style><div>Visible</div></body>`))
	})

	text, err := client.FetchText(context.Background(), "https://example.com/job")
	require.NoError(t, err)

	assert.NotContains(t, text, "secret")
	assert.NotContains(t, text, ".x{}")
	assert.NotContains(t, text, "<")
	assert.Equal(t, "Visible", text)
}

func TestFetchText_TruncatesToBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<body>" + strings.Repeat("word ", 200) + "</body>"))
	}))
	defer server.Close()

	client := NewClient("test-key", Options{Endpoint: server.URL, MaxChars: 100})

	text, err := client.FetchText(context.Background(), "https://example.com/job")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(text), 100)
}

func TestFetchText_UpstreamFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FetchText(context.Background(), "https://example.com/job")
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusBadGateway, fetchErr.Status)
}

func TestFetchText_MissingCredential(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient("", Options{Endpoint: server.URL})

	_, err := client.FetchText(context.Background(), "https://example.com/job")
	require.Error(t, err)

	var credErr *MissingCredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "SCRAPERAPI_KEY", credErr.Name)
	assert.False(t, called, "no network call should be made without a credential")
}

func TestFetchText_InvalidURL(t *testing.T) {
	client := NewClient("test-key", Options{})

	_, err := client.FetchText(context.Background(), "not-a-valid-url")
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestSanitizeHTML_Fragment(t *testing.T) {
	text, err := SanitizeHTML(`<div><b>Title</b>  and   body</div>`)
	require.NoError(t, err)
	assert.Equal(t, "Title and body", text)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestTruncate_RuneBoundary(t *testing.T) {
	text := "héllo wörld"
	for max := 1; max <= len(text); max++ {
		out := Truncate(text, max)
		assert.True(t, utf8.ValidString(out), "max=%d yields invalid UTF-8: %q", max, out)
		assert.LessOrEqual(t, len(out), max)
	}
	assert.Equal(t, "日本", Truncate("日本語", 8))
	assert.Equal(t, "日本", Truncate("日本語", 7))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}
