package logging

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync/atomic"
	"unicode/utf8"
)

var debugEnabled atomic.Bool

// EnableDebug turns on verbose debug logging for the window, tray and
// installer lifecycles.
func EnableDebug() {
	if debugEnabled.Swap(true) {
		return
	}
	log.Printf("[DEBUG] debug logging enabled")
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	log.Printf("[DEBUG] "+format, args...)
}

// LogHTTPRequest emits detailed information about an outbound HTTP request when
// debugging is enabled. Authorization headers and token query parameters are
// masked prior to logging.
func LogHTTPRequest(req *http.Request, body []byte) {
	if !DebugEnabled() || req == nil {
		return
	}

	target := sanitizeURL(req.URL)
	if target == "" {
		target = "<unknown>"
	}

	log.Printf("[DEBUG] HTTP request %s %s", req.Method, target)

	if len(req.Header) > 0 {
		log.Printf("[DEBUG] --> request headers: %s", formatHeaders(req.Header))
	}

	if len(body) > 0 {
		log.Printf("[DEBUG] --> request payload %s", describePayload(body))
	}
}

// LogHTTPResponse emits detailed information about an inbound HTTP response
// when debugging is enabled. Release payloads can be large, so bodies are
// truncated to maxPayloadLog bytes.
func LogHTTPResponse(resp *http.Response, body []byte) {
	if !DebugEnabled() || resp == nil {
		return
	}

	target := "<unknown>"
	if resp.Request != nil {
		target = sanitizeURL(resp.Request.URL)
	}

	log.Printf("[DEBUG] HTTP response %s for %s", resp.Status, target)

	if len(resp.Header) > 0 {
		log.Printf("[DEBUG] <-- response headers: %s", formatHeaders(resp.Header))
	}

	if len(body) > 0 {
		log.Printf("[DEBUG] <-- response payload %s", describePayload(body))
	}
}

// formatHeaders renders headers sorted by name with credentials masked.
func formatHeaders(headers http.Header) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		values := headers[name]
		if isSensitiveKey(name) {
			values = maskAll(values)
		}
		parts = append(parts, name+": ["+strings.Join(values, ", ")+"]")
	}
	return strings.Join(parts, ", ")
}

const maxPayloadLog = 2048

func describePayload(body []byte) string {
	size := len(body)
	suffix := ""
	if size > maxPayloadLog {
		body = body[:maxPayloadLog]
		suffix = "..."
	}
	if utf8.Valid(body) {
		return fmt.Sprintf("(utf-8, %d bytes): %s%s", size, string(body), suffix)
	}

	encoded := base64.StdEncoding.EncodeToString(body)
	return fmt.Sprintf("(base64, %d bytes): %s%s", size, encoded, suffix)
}

// sanitizeURL masks token-like query parameters. Release URLs never carry
// user info, so only the query is inspected.
func sanitizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	clone := *u
	if clone.RawQuery == "" {
		return clone.String()
	}

	query := clone.Query()
	masked := false
	for key, values := range query {
		if isSensitiveKey(key) {
			query[key] = maskAll(values)
			masked = true
		}
	}
	if masked {
		clone.RawQuery = query.Encode()
	}
	return clone.String()
}

func isSensitiveKey(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"authorization", "cookie", "secret", "token"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func maskAll(values []string) []string {
	out := make([]string, len(values))
	for i, value := range values {
		out[i] = maskValue(value)
	}
	return out
}

// maskValue keeps the last four characters of a credential.
func maskValue(value string) string {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		return ""
	case len(trimmed) <= 4:
		return "****"
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}
