package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public IPFS gateway used when none is configured.
	DefaultBaseURL = "https://gateway.pinata.cloud/ipfs/"

	// DefaultTimeout bounds the single retrieval attempt.
	DefaultTimeout = 15 * time.Second

	defaultUserAgent = "CopyrightChain-AI/1.0"

	// maxObjectBytes caps how much of a gateway response is read into memory.
	maxObjectBytes = 32 << 20
)

// HTTPGateway fetches content-addressed objects over an HTTP gateway
// (GET <base>/<objectId>).
type HTTPGateway struct {
	base      string
	userAgent string
	client    *http.Client
}

// NewHTTP builds a gateway client. Empty baseURL and zero timeout fall back
// to the defaults.
func NewHTTP(baseURL string, timeout time.Duration) *HTTPGateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPGateway{
		base:      baseURL,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// Fetch performs the single retrieval attempt. Timeouts, network errors and
// non-2xx statuses all surface as errors; the caller owns the degrade policy.
func (g *HTTPGateway) Fetch(ctx context.Context, objectID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+objectID, nil)
	if err != nil {
		return nil, fmt.Errorf("build gateway request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway fetch %s: %w", objectID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway fetch %s: unexpected status %d", objectID, resp.StatusCode)
	}

	blob, err := io.ReadAll(io.LimitReader(resp.Body, maxObjectBytes))
	if err != nil {
		return nil, fmt.Errorf("read gateway response %s: %w", objectID, err)
	}
	return blob, nil
}
