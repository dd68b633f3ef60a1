// SPDX-License-Identifier: MIT

package gridmap

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSource reads a JSON adjacency from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return "file:" + s.Path }

// Fetch reads and decodes the file. Decode failures wrap ErrPayload.
func (s FileSource) Fetch(ctx context.Context) (Adjacency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var adj Adjacency
	if err = json.Unmarshal(data, &adj); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPayload, s.Path, err)
	}

	return adj, nil
}
