package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller's address
// Priority: X-Real-IP > first X-Forwarded-For entry > RemoteAddr host
func ClientIP(r *http.Request) string {
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	// X-Forwarded-For can contain multiple IPs (format: "client, proxy1, proxy2")
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
