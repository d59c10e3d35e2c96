package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

// permissiveValidator accepts everything except URLs it is told to block,
// so fetch tests can run against a loopback httptest server.
type permissiveValidator struct {
	blocked map[string]string
}

func (p *permissiveValidator) Validate(_ context.Context, rawURL string) urlcheck.Result {
	for prefix, reason := range p.blocked {
		if strings.HasPrefix(rawURL, prefix) {
			return urlcheck.Result{Valid: false, Reason: reason}
		}
	}
	return urlcheck.Result{Valid: true}
}

func newTestFetcher(v Validator) *Fetcher {
	f := New(Config{
		Timeout:      5 * time.Second,
		MaxBodyBytes: 1 << 20,
		MaxRedirects: 3,
		UserAgent:    "dramhound-test/1.0",
	}, v)
	f.allowPrivateDial = true
	return f
}

func TestFetchOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dramhound-test/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><h1>Whiskey List</h1></body></html>"))
	}))
	defer srv.Close()

	f := newTestFetcher(&permissiveValidator{})
	res, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, string(res.Body), "Whiskey List")
	assert.NotEmpty(t, res.ContentHash)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestFetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := newTestFetcher(&permissiveValidator{})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFetch))
}

func TestFetchRejectsNonTextContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	f := newTestFetcher(&permissiveValidator{})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFetch))
}

func TestFetchBodySizeCeiling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write(make([]byte, 2<<20))
	}))
	defer srv.Close()

	f := newTestFetcher(&permissiveValidator{})
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrFetch))
	assert.Contains(t, err.Error(), "too large")
}

func TestFetchRejectsBlockedInitialURL(t *testing.T) {
	f := newTestFetcher(&permissiveValidator{blocked: map[string]string{
		"http://blocked.example": "private IP addresses are not allowed",
	}})
	_, err := f.Fetch(context.Background(), "http://blocked.example/menu")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrSafetyRejected))
}

func TestFetchRevalidatesRedirectTarget(t *testing.T) {
	var target string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, target, http.StatusFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()
	target = srv.URL + "/landed"

	// Redirect target blocked: the fetch must fail even though the initial
	// URL validated.
	f := newTestFetcher(&permissiveValidator{blocked: map[string]string{
		target: "private IP addresses are not allowed",
	}})
	_, err := f.Fetch(context.Background(), srv.URL+"/start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect blocked")

	// Same chain with nothing blocked succeeds.
	f = newTestFetcher(&permissiveValidator{})
	res, err := f.Fetch(context.Background(), srv.URL+"/start")
	require.NoError(t, err)
	assert.Equal(t, target, res.FinalURL)
}

func TestFetchRedirectHopLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer srv.Close()

	f := newTestFetcher(&permissiveValidator{})
	_, err := f.Fetch(context.Background(), srv.URL+"/a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many redirects")
}
