// Package release locates and downloads published desktop builds.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/protondrive/internal/logging"
	"github.com/example/protondrive/internal/version"
)

const (
	// DefaultRepo hosts the published desktop builds.
	DefaultRepo = "donniedice/protondrive-tauri"

	defaultAPIBase = "https://api.github.com"
	userAgentTool  = "protondrive-desktop-installer"
)

// ErrNotFound is returned when the repository has no published release.
var ErrNotFound = errors.New("release: not found")

// ErrNoAssets is returned when the latest release carries no files yet.
var ErrNoAssets = errors.New("release: no assets")

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// Release is the subset of the GitHub release payload used by the installer.
type Release struct {
	TagName string  `json:"tag_name"`
	Name    string  `json:"name"`
	Message string  `json:"message,omitempty"`
	Assets  []Asset `json:"assets"`
}

// Client queries the GitHub releases API.
type Client struct {
	HTTP    *http.Client
	APIBase string
}

// NewClient returns a Client with sensible timeouts. A nil httpClient gets a
// default one.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{HTTP: httpClient, APIBase: defaultAPIBase}
}

// ReleasesURL returns the human-facing releases page for repo.
func ReleasesURL(repo string) string {
	return "https://github.com/" + repo + "/releases"
}

// Latest fetches the latest release of repo.
func (c *Client) Latest(ctx context.Context, repo string) (*Release, error) {
	endpoint := strings.TrimRight(c.APIBase, "/") + "/repos/" + repo + "/releases/latest"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent(userAgentTool))
	req.Header.Set("Accept", "application/vnd.github+json")
	logging.LogHTTPRequest(req, nil)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read release response: %w", err)
	}
	logging.LogHTTPResponse(resp, body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: visit %s", ErrNotFound, ReleasesURL(repo))
	}

	var rel Release
	if err := json.Unmarshal(body, &rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if rel.Message == "Not Found" {
		return nil, fmt.Errorf("%w: visit %s", ErrNotFound, ReleasesURL(repo))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch latest release: unexpected status %s: %s", resp.Status, rel.Message)
	}
	if len(rel.Assets) == 0 {
		return nil, fmt.Errorf("%w: builds may still be in progress", ErrNoAssets)
	}
	return &rel, nil
}
