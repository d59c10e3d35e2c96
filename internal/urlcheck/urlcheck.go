// Package urlcheck decides whether a user-supplied URL is safe to fetch.
// It blocks private, loopback, link-local and cloud-metadata targets, and
// validates against resolved addresses rather than hostnames so that DNS
// rebinding cannot smuggle a request into the internal network.
package urlcheck

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// MaxURLLength caps accepted URLs.
const MaxURLLength = 2048

// Pre-compiled CIDR networks for private/reserved IP ranges.
// These are parsed once at package initialization for efficiency.
var (
	cgnat    *net.IPNet // 100.64.0.0/10 - Carrier-grade NAT
	v6unique *net.IPNet // fc00::/7 - IPv6 unique local
	v6link   *net.IPNet // fe80::/10 - IPv6 link-local
)

func init() {
	var err error

	_, cgnat, err = net.ParseCIDR("100.64.0.0/10")
	if err != nil {
		panic("invalid CGNAT CIDR: " + err.Error())
	}

	_, v6unique, err = net.ParseCIDR("fc00::/7")
	if err != nil {
		panic("invalid IPv6 unique local CIDR: " + err.Error())
	}

	_, v6link, err = net.ParseCIDR("fe80::/10")
	if err != nil {
		panic("invalid IPv6 link-local CIDR: " + err.Error())
	}
}

// metadataHosts are cloud-metadata endpoints and their DNS aliases.
var metadataHosts = map[string]struct{}{
	"169.254.169.254":          {},
	"metadata.google.internal": {},
	"metadata.goog":            {},
}

// allowedPorts are the only ports a menu URL may target. Anything else
// signals an internal service probe.
var allowedPorts = map[string]struct{}{
	"":     {}, // scheme default
	"80":   {},
	"443":  {},
	"8080": {},
	"8443": {},
}

// Result is the validator's decision. Reason is human-readable and safe to
// surface to the caller.
type Result struct {
	Valid  bool
	Reason string
}

// LookupFunc resolves a hostname to its addresses. Tests inject a fake;
// production uses net.DefaultResolver.
type LookupFunc func(ctx context.Context, host string) ([]net.IPAddr, error)

// Validator validates URLs for SSRF safety. The zero value is not usable;
// construct with New.
type Validator struct {
	lookup LookupFunc
}

// New returns a Validator resolving through net.DefaultResolver.
func New() *Validator {
	return &Validator{lookup: func(ctx context.Context, host string) ([]net.IPAddr, error) {
		return net.DefaultResolver.LookupIPAddr(ctx, host)
	}}
}

// NewWithLookup returns a Validator with a custom resolver, for tests.
func NewWithLookup(lookup LookupFunc) *Validator {
	return &Validator{lookup: lookup}
}

// Validate decides whether rawURL is safe to fetch. It is a pure decision
// apart from DNS lookups. The same check must be re-run on every redirect
// target the fetcher would follow.
func (v *Validator) Validate(ctx context.Context, rawURL string) Result {
	if len(rawURL) > MaxURLLength {
		return reject("URL exceeds maximum length")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return reject("invalid URL")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return reject(fmt.Sprintf("scheme %q is not allowed; use http or https", parsed.Scheme))
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return reject("URL has no hostname")
	}

	if _, ok := allowedPorts[parsed.Port()]; !ok {
		return reject(fmt.Sprintf("port %s is not allowed", parsed.Port()))
	}

	// Block localhost variants and local-only domains before any lookup.
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return reject("localhost URLs are not allowed")
	}
	if strings.HasSuffix(host, ".local") || strings.HasSuffix(host, ".internal") {
		return reject("local domain URLs are not allowed")
	}
	if _, ok := metadataHosts[host]; ok {
		return reject("cloud metadata endpoints are not allowed")
	}

	// Literal IP target: no DNS involved.
	if ip := net.ParseIP(host); ip != nil {
		if IsPrivateIP(ip) {
			return reject("private IP addresses are not allowed")
		}
		return Result{Valid: true}
	}

	// Hostname: validate every resolved address, not the textual name.
	addrs, err := v.lookup(ctx, host)
	if err != nil {
		return reject(fmt.Sprintf("hostname %s did not resolve", host))
	}
	if len(addrs) == 0 {
		return reject(fmt.Sprintf("hostname %s has no addresses", host))
	}
	for _, a := range addrs {
		if IsPrivateIP(a.IP) {
			return reject(fmt.Sprintf("hostname %s resolves to a private address", host))
		}
		if _, ok := metadataHosts[a.IP.String()]; ok {
			return reject(fmt.Sprintf("hostname %s resolves to a metadata endpoint", host))
		}
	}

	return Result{Valid: true}
}

func reject(reason string) Result {
	return Result{Valid: false, Reason: reason}
}

// IsPrivateIP checks if an IP is in private/reserved ranges.
// It handles IPv4, IPv6, and IPv6-mapped IPv4 addresses.
func IsPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
		return true
	}

	// IPv6-mapped IPv4 (::ffff:x.x.x.x): re-check the embedded IPv4 address.
	if v4 := ip.To4(); v4 != nil {
		ip = v4
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() {
			return true
		}
	}

	// Additional reserved ranges using pre-compiled CIDRs.
	if cgnat.Contains(ip) || v6unique.Contains(ip) || v6link.Contains(ip) {
		return true
	}

	return false
}
