package urlcheck

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
)

// fakeLookup maps hostnames to fixed addresses.
func fakeLookup(hosts map[string][]string) LookupFunc {
	return func(_ context.Context, host string) ([]net.IPAddr, error) {
		ips, ok := hosts[host]
		if !ok {
			return nil, errors.New("no such host")
		}
		out := make([]net.IPAddr, 0, len(ips))
		for _, s := range ips {
			out = append(out, net.IPAddr{IP: net.ParseIP(s)})
		}
		return out, nil
	}
}

func TestValidate(t *testing.T) {
	v := NewWithLookup(fakeLookup(map[string][]string{
		"example.com":       {"93.184.216.34"},
		"rebind.attacker":   {"93.184.216.34", "10.0.0.5"},
		"internal.attacker": {"192.168.1.10"},
		"meta.attacker":     {"169.254.169.254"},
		"v6.example.com":    {"2606:2800:220:1:248:1893:25c8:1946"},
		"v6.internal":       {"fc00::1"},
	}))

	tests := []struct {
		name      string
		url       string
		wantValid bool
	}{
		{"valid https URL", "https://example.com/menu", true},
		{"valid http URL", "http://example.com/whiskey-list", true},
		{"valid ipv6 host", "https://v6.example.com/", true},
		{"port 8443 allowed", "https://example.com:8443/menu", true},
		{"ftp scheme rejected", "ftp://example.com/menu", false},
		{"file scheme rejected", "file:///etc/passwd", false},
		{"localhost rejected", "http://localhost:8080/", false},
		{"127.0.0.1 rejected", "http://127.0.0.1/menu", false},
		{"::1 rejected", "http://[::1]/menu", false},
		{"0.0.0.0 rejected", "http://0.0.0.0/", false},
		{"metadata IP rejected", "http://169.254.169.254/latest/meta-data", false},
		{"metadata alias rejected", "http://metadata.google.internal/computeMetadata", false},
		{"private 10.x rejected", "http://10.0.0.1/menu", false},
		{"private 172.16.x rejected", "http://172.16.0.1/menu", false},
		{"private 192.168.x rejected", "http://192.168.1.1/menu", false},
		{"link-local rejected", "http://169.254.10.10/", false},
		{"CGNAT rejected", "http://100.64.0.1/", false},
		{"v6 unique local rejected", "http://[fc00::1]/", false},
		{"v6 mapped v4 loopback rejected", "http://[::ffff:127.0.0.1]/", false},
		{".local domain rejected", "http://fileserver.local/menu", false},
		{".internal domain rejected", "http://app.internal/menu", false},
		{"odd port rejected", "http://example.com:6379/", false},
		{"rebinding host rejected", "http://rebind.attacker/menu", false},
		{"host resolving private rejected", "http://internal.attacker/menu", false},
		{"host resolving to metadata rejected", "http://meta.attacker/menu", false},
		{"unresolvable host rejected", "http://doesnotexist.example/", false},
		{"empty host rejected", "http:///menu", false},
		{"not a url", "::not a url::", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(context.Background(), tt.url)
			if res.Valid != tt.wantValid {
				t.Errorf("Validate(%q) = %+v, want valid=%v", tt.url, res, tt.wantValid)
			}
			if !res.Valid && res.Reason == "" {
				t.Errorf("Validate(%q) rejected without a reason", tt.url)
			}
		})
	}
}

func TestValidateMaxLength(t *testing.T) {
	v := New()
	long := "http://example.com/" + strings.Repeat("a", MaxURLLength)
	if res := v.Validate(context.Background(), long); res.Valid {
		t.Errorf("over-length URL accepted")
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip       string
		expected bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"172.16.0.1", true},
		{"192.168.0.1", true},
		{"169.254.169.254", true},
		{"100.64.0.1", true},
		{"0.0.0.0", true},
		{"::1", true},
		{"fc00::1", true},
		{"fe80::1", true},
		{"::ffff:192.168.1.1", true},
		{"8.8.8.8", false},
		{"93.184.216.34", false},
		{"2606:4700:4700::1111", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			got := IsPrivateIP(net.ParseIP(tt.ip))
			if got != tt.expected {
				t.Errorf("IsPrivateIP(%s) = %v, want %v", tt.ip, got, tt.expected)
			}
		})
	}
}
