// Package provision supplies the bootstrap snapshot: the initial dataset a
// fresh store hydrates from. Sources are either a remote HTTP endpoint or the
// built-in seed dataset.
package provision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/koprumezun/mezunhub/internal/demo"
	"github.com/koprumezun/mezunhub/internal/seed"
)

// Provisioner fetches the bootstrap snapshot. The warning string, when
// non-empty, is surfaced to the client but does not fail the bootstrap.
type Provisioner interface {
	FetchSnapshot(ctx context.Context) (demo.Snapshot, string, error)
}

// bootstrapEnvelope is the preferred remote response shape. A bare snapshot
// body (no data field) is also accepted.
type bootstrapEnvelope struct {
	Data *demo.Snapshot `json:"data"`
	Meta struct {
		Warning string `json:"warning"`
	} `json:"meta"`
}

// HTTPProvisioner fetches the snapshot from a configured endpoint.
type HTTPProvisioner struct {
	url    string
	client *http.Client
}

// NewHTTPProvisioner builds a provisioner against the given URL.
func NewHTTPProvisioner(url string) *HTTPProvisioner {
	return &HTTPProvisioner{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvisioner) FetchSnapshot(ctx context.Context) (demo.Snapshot, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return demo.Snapshot{}, "", fmt.Errorf("building bootstrap request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return demo.Snapshot{}, "", fmt.Errorf("fetching bootstrap snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return demo.Snapshot{}, "", fmt.Errorf("bootstrap endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return demo.Snapshot{}, "", fmt.Errorf("reading bootstrap response: %w", err)
	}

	var env bootstrapEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Data != nil {
		return *env.Data, env.Meta.Warning, nil
	}

	// Bare snapshot without the envelope.
	var snapshot demo.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return demo.Snapshot{}, "", fmt.Errorf("decoding bootstrap snapshot: %w", err)
	}
	return snapshot, "", nil
}

// StaticProvisioner serves the embedded seed dataset. Used when no remote
// bootstrap URL is configured.
type StaticProvisioner struct{}

func (StaticProvisioner) FetchSnapshot(ctx context.Context) (demo.Snapshot, string, error) {
	return seed.Snapshot(), "", nil
}
