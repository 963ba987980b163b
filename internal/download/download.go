package download

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Sufmax/printful-sdk/pkg/httpclient"
)

// Downloader fetches generated mockup images and writes them to disk.
type Downloader struct {
	client httpclient.Client
}

// New constructs a downloader with the provided HTTP client (or default).
func New(client httpclient.Client) *Downloader {
	if client == nil {
		client = httpclient.NewRestyClient(30 * time.Second)
	}
	return &Downloader{client: client}
}

// Save fetches url and writes the body to path, creating parent directories
// as needed. When path has no extension one is derived from the response
// content type. It returns the path actually written.
func (d *Downloader) Save(ctx context.Context, url, path string) (string, error) {
	resp, err := d.client.Get(ctx, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}
	body := resp.Body()
	if len(body) == 0 {
		return "", fmt.Errorf("fetch %s: empty body", url)
	}

	if filepath.Ext(path) == "" {
		path += extensionFor(resp.Header("Content-Type"))
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// extensionFor maps an image content type to a file extension, defaulting to .jpg.
func extensionFor(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
