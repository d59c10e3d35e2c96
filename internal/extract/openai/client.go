package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dramhound/dramhound/constants"
	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/extract"
)

// menuPayload is the wire shape the capability returns; it is folded into an
// ExtractedMenu after validation.
type menuPayload struct {
	BarName    *string                    `json:"bar_name,omitempty"`
	Confidence *float32                   `json:"confidence,omitempty"`
	Whiskeys   []extract.ExtractedWhiskey `json:"whiskeys"`
}

// ExtractFromText implements extract.MenuExtractor using text-only
// chat/completions over pre-converted markdown.
func (c *Client) ExtractFromText(ctx context.Context, req extract.TextRequest) (*extract.ExtractedMenu, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"method", "text",
		"text_len", len(req.Markdown),
		"title_hint", req.TitleHint,
		"source_url", req.SourceURL,
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req.TitleHint)},
			{"role": "user", "content": buildTextPrompt(req.Markdown) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(extract.BuildMenuJSONSchema())},
		},
	}

	payload, raw, err := c.extractWithAttempts(ctx, rid, body)
	if err != nil {
		return nil, raw, err
	}

	menu := c.buildMenu(payload, constants.MethodText, constants.SourceWebsiteScrape)
	menu.SourceURL = req.SourceURL
	menu.ContentHash = req.ContentHash

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"method", menu.ExtractionMethod,
		"whiskeys", len(menu.Whiskeys),
		"confidence", menu.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return menu, raw, nil
}

// ExtractFromImage implements extract.MenuExtractor using a vision model over
// a menu photograph. The caller enforces the MIME allow-list and size cap.
func (c *Client) ExtractFromImage(ctx context.Context, req extract.ImageRequest) (*extract.ExtractedMenu, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.VisionModel,
		"method", "vision",
		"image_bytes", len(req.Data),
		"mime_type", req.MIMEType,
	)

	dataURI := "data:" + req.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(req.Data)
	body := map[string]any{
		"model":           c.cfg.VisionModel,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt("")},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": "Read this whiskey menu photograph and return ONLY JSON that matches the provided schema."},
				{"type": "image_url", "image_url": map[string]any{"url": dataURI}},
			}},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(extract.BuildMenuJSONSchema())},
		},
	}

	payload, raw, err := c.extractWithAttempts(ctx, rid, body)
	if err != nil {
		return nil, raw, err
	}

	menu := c.buildMenu(payload, constants.MethodVision, constants.SourceGooglePhoto)

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"method", menu.ExtractionMethod,
		"whiskeys", len(menu.Whiskeys),
		"confidence", menu.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return menu, raw, nil
}

// extractWithAttempts runs the request up to cfg.MaxAttempts times, accepting
// the first response that survives sanitize + schema validation. A provider
// or transport failure on the final attempt surfaces as ErrExtraction.
func (c *Client) extractWithAttempts(ctx context.Context, rid string, body map[string]any) (*menuPayload, []byte, error) {
	var lastErr error
	var lastRaw []byte

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, lastRaw, fmt.Errorf("%w: %v", common.ErrExtraction, err)
		}

		payload, raw, err := c.extractOnce(ctx, body)
		if err == nil {
			return payload, raw, nil
		}
		lastErr = err
		lastRaw = raw
		c.log.Warn("llm.extract.attempt_failed",
			"req_id", rid, "attempt", attempt, "max_attempts", c.cfg.MaxAttempts, "error", err)
	}

	c.log.Error("llm.extract.gave_up", "req_id", rid, "attempts", c.cfg.MaxAttempts, "error", lastErr)
	return nil, lastRaw, fmt.Errorf("%w: %v", common.ErrExtraction, lastErr)
}

func (c *Client) extractOnce(ctx context.Context, body map[string]any) (*menuPayload, []byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, raw, fmt.Errorf("decode provider response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, raw, fmt.Errorf("no choices in provider response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	cleaned, _, err := extract.NormalizeAndSanitizeJSON(content, c.log)
	if err != nil {
		return nil, content, fmt.Errorf("sanitize failed: %w", err)
	}
	if err := extract.ValidateMenuJSON(cleaned); err != nil {
		return nil, content, fmt.Errorf("schema validation failed: %w", err)
	}

	var payload menuPayload
	if err := json.Unmarshal(cleaned, &payload); err != nil {
		return nil, cleaned, fmt.Errorf("unmarshal menu: %w", err)
	}
	return &payload, cleaned, nil
}

func (c *Client) buildMenu(p *menuPayload, method constants.ExtractionMethod, source constants.SourceType) *extract.ExtractedMenu {
	confidence := float32(0.75) // provider gave structure but no self-assessment
	if p.Confidence != nil {
		confidence = *p.Confidence
	}
	now := time.Now().UTC()
	menu := &extract.ExtractedMenu{
		BarName:          p.BarName,
		Whiskeys:         p.Whiskeys,
		ExtractionMethod: method,
		Confidence:       confidence,
		ScrapedAt:        &now,
		SourceType:       source,
	}
	extract.Finalize(menu)
	return menu
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.log.Warn("provider response body close error", "error", cerr)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("provider status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func buildSystemPrompt(titleHint string) string {
	parts := []string{
		"You are a whiskey menu parser. Return ONLY JSON that matches the JSON Schema provided.",
		"Each whiskey entry needs at least a name; include distillery, spirit_type, age_years, abv, price, pour_size and notes only when the menu states them.",
		"Prices are numbers without currency symbols.",
		"spirit_type must be one of: " + strings.Join(constants.SpiritTypes, ", ") + ".",
		"Include a 'confidence' number in [0,1] reflecting how readable the menu was.",
		"If the page contains no whiskey menu, return {\"whiskeys\": []}.",
		"Never output null. If a field is not present, omit it.",
	}
	if titleHint != "" {
		parts = append(parts, "The page title is: "+titleHint+". Use it for 'bar_name' if no better name appears.")
	}
	return strings.Join(parts, " ")
}

func buildTextPrompt(markdown string) string {
	var b strings.Builder
	b.WriteString("Menu page content (markdown):\n")
	// cap prompt size; menus fit well under this
	if len(markdown) > 24000 {
		b.WriteString(markdown[:24000])
	} else {
		b.WriteString(markdown)
	}
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
