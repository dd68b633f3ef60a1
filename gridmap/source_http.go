// SPDX-License-Identifier: MIT

package gridmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultHTTPTimeout bounds a single fetch when no client is supplied.
	DefaultHTTPTimeout = 10 * time.Second

	maxBodyBytes = 8 << 20
)

// HTTPSource fetches a JSON adjacency with GET {base}{path}.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSource joins baseURI and apiPath into the fetch endpoint.
// A nil client is replaced by one with DefaultHTTPTimeout.
func NewHTTPSource(baseURI, apiPath string, client *http.Client) (*HTTPSource, error) {
	base, err := url.Parse(baseURI)
	if err != nil {
		return nil, fmt.Errorf("gridmap: base uri %q: %w", baseURI, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("gridmap: base uri %q: scheme and host required", baseURI)
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}

	return &HTTPSource{endpoint: base.JoinPath(apiPath).String(), client: client}, nil
}

// Endpoint returns the URL requested by Fetch.
func (s *HTTPSource) Endpoint() string { return s.endpoint }

func (s *HTTPSource) String() string { return s.endpoint }

// Fetch performs the request. Any non-2xx status is an error; a body that
// does not decode is reported as ErrPayload.
func (s *HTTPSource) Fetch(ctx context.Context) (Adjacency, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	var adj Adjacency
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&adj); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPayload, s.endpoint, err)
	}

	return adj, nil
}
