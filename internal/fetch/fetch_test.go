package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := New(Options{UserAgent: "test-agent"}).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "text/html", result.ContentType)
	assert.Equal(t, "test-agent", gotUA)
}

func TestGet_InvalidURL(t *testing.T) {
	tests := []string{"not-a-valid-url", "ftp://example.com/job", "http://", "://bad"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := New(Options{}).Get(context.Background(), raw)
			require.Error(t, err)

			var fetchErr *Error
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, raw, fetchErr.URL)
			assert.Contains(t, err.Error(), "invalid URL")
		})
	}
}

func TestGet_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := New(Options{}).Get(context.Background(), server.URL)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestGet_LimitsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1000)))
	}))
	defer server.Close()

	result, err := New(Options{MaxBytes: 100}).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, result.HTML, 100)
}

func TestGet_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).Get(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

const shortPosting = `<html><body><nav>Jobs Home</nav>
<div class="job-description"><h2>Senior Go Engineer</h2><p>Build services.</p></div>
<form id="application-form">Apply now</form></body></html>`

func longPosting() string {
	var b strings.Builder
	b.WriteString(`<html><body><main><h2>Requirements</h2><ul>`)
	for range 40 {
		b.WriteString("<li>Experience with Go, Kubernetes and distributed systems</li>")
	}
	b.WriteString(`</ul></main></body></html>`)
	return b.String()
}

func TestJobPosting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(shortPosting))
	}))
	defer server.Close()

	text, err := New(Options{}).JobPosting(context.Background(), server.URL, false)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Engineer\nBuild services.", text)
}

func TestJobPosting_BrowserFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(shortPosting))
	}))
	defer server.Close()

	t.Run("uses rendered text when longer", func(t *testing.T) {
		calls := 0
		f := New(Options{}).WithRenderer(func(_ context.Context, rawURL string) (string, error) {
			calls++
			assert.Equal(t, server.URL, rawURL)
			return longPosting(), nil
		})

		text, err := f.JobPosting(context.Background(), server.URL, true)
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.True(t, strings.HasPrefix(text, "Requirements\nExperience with Go"))
	})

	t.Run("keeps HTTP text on render failure", func(t *testing.T) {
		f := New(Options{}).WithRenderer(func(context.Context, string) (string, error) {
			return "", errors.New("chrome not installed")
		})

		text, err := f.JobPosting(context.Background(), server.URL, true)
		require.NoError(t, err)
		assert.Equal(t, "Senior Go Engineer\nBuild services.", text)
	})

	t.Run("not rendered when disabled", func(t *testing.T) {
		f := New(Options{}).WithRenderer(func(context.Context, string) (string, error) {
			t.Fatal("renderer should not be called")
			return "", nil
		})

		_, err := f.JobPosting(context.Background(), server.URL, false)
		require.NoError(t, err)
	})
}

func TestJobPosting_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := New(Options{}).JobPosting(context.Background(), server.URL, false)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("   short   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &Error{URL: "https://example.com", Message: "HTTP request failed", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch https://example.com: HTTP request failed: dial tcp: refused", err.Error())
}
