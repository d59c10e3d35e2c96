package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/extract"
)

func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func newFakeProvider(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		MaxAttempts: 2,
	}, nil)
	return srv, c
}

func TestExtractFromTextOK(t *testing.T) {
	_, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(chatResponse(
			`{"bar_name":"The Dram Room","confidence":0.92,"whiskeys":[{"name":"Lagavulin 16","price":18,"spirit_type":"scotch"}]}`,
		))
	})

	menu, raw, err := c.ExtractFromText(context.Background(), extract.TextRequest{
		Markdown:  "| Lagavulin 16 | $18 |",
		SourceURL: "https://example.com/menu",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, constants.MethodText, menu.ExtractionMethod)
	assert.Equal(t, constants.SourceWebsiteScrape, menu.SourceType)
	assert.Equal(t, "https://example.com/menu", menu.SourceURL)
	require.Len(t, menu.Whiskeys, 1)
	assert.Equal(t, "Lagavulin 16", menu.Whiskeys[0].Name)
	require.NotNil(t, menu.BarName)
	assert.Equal(t, "The Dram Room", *menu.BarName)
	assert.InDelta(t, 0.92, float64(menu.Confidence), 1e-6)
}

func TestExtractFromTextLowConfidenceBecomesReview(t *testing.T) {
	_, c := newFakeProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`{"confidence":0.2,"whiskeys":[{"name":"Unreadable Dram"}]}`))
	})

	menu, _, err := c.ExtractFromText(context.Background(), extract.TextRequest{Markdown: "blurry"})
	require.NoError(t, err)
	assert.Equal(t, constants.MethodReview, menu.ExtractionMethod)
}

func TestExtractFromTextEmptyMenuIsNotError(t *testing.T) {
	_, c := newFakeProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`{"confidence":0.95,"whiskeys":[]}`))
	})

	menu, _, err := c.ExtractFromText(context.Background(), extract.TextRequest{Markdown: "a wine bar"})
	require.NoError(t, err)
	assert.Empty(t, menu.Whiskeys)
	assert.Equal(t, constants.MethodText, menu.ExtractionMethod)
}

func TestExtractRetriesThenSucceeds(t *testing.T) {
	calls := 0
	_, c := newFakeProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			_ = json.NewEncoder(w).Encode(chatResponse(`not json at all`))
			return
		}
		_ = json.NewEncoder(w).Encode(chatResponse(`{"whiskeys":[{"name":"Oban 14"}]}`))
	})

	menu, _, err := c.ExtractFromText(context.Background(), extract.TextRequest{Markdown: "menu"})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, menu.Whiskeys, 1)
}

func TestExtractGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	_, c := newFakeProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, _, err := c.ExtractFromText(context.Background(), extract.TextRequest{Markdown: "menu"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))
	assert.Equal(t, 2, calls)
}

func TestExtractNoMenuStructureFailsAllAttempts(t *testing.T) {
	// A refusal with no whiskeys key must not be coerced into a valid empty
	// menu; every attempt fails schema validation and the call surfaces
	// ErrExtraction.
	calls := 0
	_, c := newFakeProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_ = json.NewEncoder(w).Encode(chatResponse(`{"error":"I cannot read this page"}`))
	})

	_, _, err := c.ExtractFromText(context.Background(), extract.TextRequest{Markdown: "menu"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrExtraction))
	assert.Equal(t, 2, calls)
}

func TestExtractFromImageUsesVisionModel(t *testing.T) {
	var gotModel string
	_, c := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)
		_ = json.NewEncoder(w).Encode(chatResponse(`{"confidence":0.8,"whiskeys":[{"name":"Hibiki Harmony"}]}`))
	})

	menu, _, err := c.ExtractFromImage(context.Background(), extract.ImageRequest{
		Data:     []byte{0xFF, 0xD8, 0xFF},
		MIMEType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", gotModel)
	assert.Equal(t, constants.MethodVision, menu.ExtractionMethod)
	assert.Equal(t, constants.SourceGooglePhoto, menu.SourceType)
}
