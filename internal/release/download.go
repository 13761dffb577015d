package release

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/example/protondrive/internal/logging"
	"github.com/example/protondrive/internal/version"
)

// DownloadsDir returns ~/Downloads, creating it when missing.
func DownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home dir: %w", err)
	}
	dir := filepath.Join(home, "Downloads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure downloads dir: %w", err)
	}
	return dir, nil
}

// FileName returns the file name to store a download under.
func FileName(downloadURL string) string {
	name := path.Base(strings.TrimRight(downloadURL, "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return fallbackFile
	}
	return name
}

// Download fetches rawURL into dest. Data is written to a temporary file and
// renamed once complete so dest is never left half-written.
func (c *Client) Download(ctx context.Context, rawURL, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent(userAgentTool))
	logging.LogHTTPRequest(req, nil)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	logging.LogHTTPResponse(resp, nil)

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download failed: %d", resp.StatusCode)
	}

	tempFile := dest + ".part"
	f, err := os.OpenFile(tempFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create download file: %w", err)
	}

	n, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil {
		_ = os.Remove(tempFile)
		return 0, fmt.Errorf("write download: %w", copyErr)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return 0, fmt.Errorf("close download: %w", closeErr)
	}

	if err := os.Rename(tempFile, dest); err != nil {
		_ = os.Remove(tempFile)
		return 0, fmt.Errorf("finalize download: %w", err)
	}
	logging.Debugf("downloaded %d bytes to %s", n, dest)
	return n, nil
}
