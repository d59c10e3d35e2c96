// Package fetcher retrieves menu pages under strict safety and resource
// limits. Every outbound connection re-checks the resolved address, and every
// redirect hop re-runs the URL safety validator.
package fetcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dramhound/dramhound/internal/common"
	"github.com/dramhound/dramhound/internal/urlcheck"
)

// FetchResult contains the result of fetching a menu page.
type FetchResult struct {
	Body        []byte
	ContentType string
	StatusCode  int
	FinalURL    string
	// ContentHash is the sha256 of the body, hex-encoded, for change detection.
	ContentHash string
}

// Validator is the safety decision the fetcher consults before the initial
// request and on every redirect target.
type Validator interface {
	Validate(ctx context.Context, rawURL string) urlcheck.Result
}

// Config bounds a Fetcher.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	MaxRedirects int
	UserAgent    string
}

// Fetcher fetches web content with security checks.
type Fetcher struct {
	client    *http.Client
	validator Validator
	userAgent string
	maxBytes  int64

	// allowPrivateDial disables the resolved-address guard. Tests only.
	allowPrivateDial bool
}

// New creates a fetcher whose transport refuses to dial private addresses,
// so a DNS answer that changes between validation and connection still
// cannot reach the internal network.
func New(cfg Config, validator Validator) *Fetcher {
	f := &Fetcher{
		validator: validator,
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
	}

	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	safeDialContext := func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid address: %w", err)
		}

		ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, fmt.Errorf("DNS lookup failed: %w", err)
		}

		if !f.allowPrivateDial {
			for _, ipAddr := range ips {
				if urlcheck.IsPrivateIP(ipAddr.IP) {
					return nil, fmt.Errorf("connection to private IP %s is not allowed", ipAddr.IP)
				}
			}
		}

		for _, ipAddr := range ips {
			connAddr := net.JoinHostPort(ipAddr.IP.String(), port)
			conn, dialErr := dialer.DialContext(ctx, network, connAddr)
			if dialErr == nil {
				return conn, nil
			}
		}

		return nil, fmt.Errorf("failed to connect to any resolved IP")
	}

	maxHops := cfg.MaxRedirects
	if maxHops <= 0 {
		maxHops = 5
	}

	f.client = &http.Client{
		Transport: &http.Transport{
			DialContext:           safeDialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: cfg.Timeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		},
		Timeout: cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxHops {
				return fmt.Errorf("too many redirects (max %d)", maxHops)
			}
			// The redirect target gets the same scrutiny as the initial URL.
			if res := f.validator.Validate(req.Context(), req.URL.String()); !res.Valid {
				return fmt.Errorf("redirect blocked: %s", res.Reason)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves HTML content from the given URL. The URL must already have
// passed the safety validator; Fetch re-checks it anyway since it is cheap
// relative to the request.
func (f *Fetcher) Fetch(ctx context.Context, urlStr string) (*FetchResult, error) {
	if res := f.validator.Validate(ctx, urlStr); !res.Valid {
		return nil, fmt.Errorf("%w: %s", common.ErrSafetyRejected, res.Reason)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", common.ErrFetch, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d: %s", common.ErrFetch, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	ct := resp.Header.Get("Content-Type")
	if !textContentType(ct) {
		return nil, fmt.Errorf("%w: unsupported content type %q", common.ErrFetch, ct)
	}

	limitReader := io.LimitReader(resp.Body, f.maxBytes+1)
	body, err := io.ReadAll(limitReader)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", common.ErrFetch, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: content too large (exceeds %d bytes)", common.ErrFetch, f.maxBytes)
	}

	sum := sha256.Sum256(body)
	return &FetchResult{
		Body:        body,
		ContentType: ct,
		StatusCode:  resp.StatusCode,
		FinalURL:    resp.Request.URL.String(),
		ContentHash: hex.EncodeToString(sum[:]),
	}, nil
}

func textContentType(ct string) bool {
	ct = strings.ToLower(ct)
	return strings.HasPrefix(ct, "text/html") ||
		strings.HasPrefix(ct, "application/xhtml+xml") ||
		strings.HasPrefix(ct, "text/plain")
}
