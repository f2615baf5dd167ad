package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Success(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "VisibilityScanner")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer target.Close()

	result, err := Page(context.Background(), target.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, target.URL, result.RequestedURL)
	assert.Equal(t, target.URL, result.FinalURL)
	assert.Contains(t, result.HTML, "hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestPage_FollowsRedirectsAndRecordsFinalURL(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/landed", http.StatusMovedPermanently)
			return
		}
		_, _ = w.Write([]byte("<html><body>landed</body></html>"))
	}))
	defer target.Close()

	result, err := Page(context.Background(), target.URL+"/start", nil)
	require.NoError(t, err)
	assert.Equal(t, target.URL+"/start", result.RequestedURL)
	assert.Equal(t, target.URL+"/landed", result.FinalURL)
	assert.Contains(t, result.HTML, "landed")
}

func TestPage_Non2xxIsNotAnError(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<html><body>custom 404 with real content</body></html>"))
	}))
	defer target.Close()

	result, err := Page(context.Background(), target.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, result.HTML, "custom 404")
}

func TestPage_InvalidURL(t *testing.T) {
	_, err := Page(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestPage_UnreachableHost(t *testing.T) {
	// A closed local port fails fast with a transport error.
	_, err := Page(context.Background(), "http://127.0.0.1:1", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}
