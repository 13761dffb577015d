package logging

import (
	"bytes"
	"log"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut := log.Writer()
	prevFlags := log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return buf
}

func TestMaskValue(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"  ":           "",
		"abc":          "****",
		"ghp_12345678": "********5678",
	}
	for input, want := range tests {
		if got := maskValue(input); got != want {
			t.Fatalf("maskValue(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSanitizeURLMasksTokens(t *testing.T) {
	u, err := url.Parse("https://api.github.com/repos/x/y/releases/latest?access_token=supersecret&page=1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := sanitizeURL(u)
	if strings.Contains(got, "supersecret") {
		t.Fatalf("token leaked in %q", got)
	}
	if !strings.Contains(got, "page=1") {
		t.Fatalf("non-sensitive query dropped: %q", got)
	}
}

func TestFormatHeadersMasksAuthorization(t *testing.T) {
	headers := http.Header{}
	headers.Set("User-Agent", "installer/1.0")
	headers.Set("Authorization", "Bearer ghp_abcdef1234")

	got := formatHeaders(headers)
	if strings.Contains(got, "ghp_abcdef") {
		t.Fatalf("authorization leaked in %q", got)
	}
	if !strings.HasPrefix(got, "Authorization: [") || !strings.Contains(got, "User-Agent: [installer/1.0]") {
		t.Fatalf("unexpected header rendering %q", got)
	}
}

func TestDescribePayloadTruncates(t *testing.T) {
	body := bytes.Repeat([]byte("a"), maxPayloadLog+10)
	got := describePayload(body)
	if !strings.HasPrefix(got, "(utf-8, 2058 bytes)") {
		t.Fatalf("unexpected header: %.40s", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation marker")
	}
}

func TestWailsLoggerDebugGatedByDebugFlag(t *testing.T) {
	buf := captureLog(t)
	debugEnabled.Store(false)
	t.Cleanup(func() { debugEnabled.Store(false) })

	WailsLogger{}.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output written while disabled: %q", buf.String())
	}
	if Level() != logger.INFO {
		t.Fatalf("expected INFO level while debug disabled, got %v", Level())
	}

	EnableDebug()
	buf.Reset()
	WailsLogger{}.Debug("visible")
	if !strings.Contains(buf.String(), "[DEBUG] wails: visible") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
	if Level() != logger.DEBUG {
		t.Fatalf("expected DEBUG level, got %v", Level())
	}
}
