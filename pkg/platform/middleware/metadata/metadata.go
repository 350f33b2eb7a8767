// Package metadata extracts the caller's address and User-Agent into the
// request context.
package metadata

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"aquaria/pkg/requestcontext"
)

// MaxForwardedHeaderLength bounds X-Forwarded-For and X-Real-IP values.
const MaxForwardedHeaderLength = 500

// Config lists the proxies allowed to set forwarding headers. With no
// trusted proxies the forwarding headers are ignored.
type Config struct {
	TrustedProxies []netip.Prefix
}

type Middleware struct {
	trusted []netip.Prefix
}

func NewMiddleware(cfg *Config) *Middleware {
	if cfg == nil {
		return &Middleware{}
	}
	return &Middleware{trusted: cfg.TrustedProxies}
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), m.clientIP(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) clientIP(r *http.Request) string {
	remote, err := netip.ParseAddrPort(r.RemoteAddr)
	var remoteAddr netip.Addr
	if err == nil {
		remoteAddr = remote.Addr()
	} else if host, _, splitErr := net.SplitHostPort(r.RemoteAddr); splitErr == nil {
		remoteAddr, _ = netip.ParseAddr(host)
	} else {
		remoteAddr, _ = netip.ParseAddr(r.RemoteAddr)
	}
	if !remoteAddr.IsValid() {
		return "unknown"
	}
	if !m.trusts(remoteAddr) {
		return remoteAddr.String()
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		forwarded = r.Header.Get("X-Real-IP")
	}
	if forwarded == "" || len(forwarded) > MaxForwardedHeaderLength {
		return remoteAddr.String()
	}
	first, _, _ := strings.Cut(forwarded, ",")
	client, err := netip.ParseAddr(strings.TrimSpace(first))
	if err != nil {
		return remoteAddr.String()
	}
	return client.String()
}

func (m *Middleware) trusts(addr netip.Addr) bool {
	for _, p := range m.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// AnonymizeIP masks an address to its /24 (IPv4) or /48 (IPv6) network for logging.
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap()
	bits := 48
	if addr.Is4() {
		bits = 24
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}
