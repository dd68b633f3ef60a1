// SPDX-License-Identifier: MIT

package gridmap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/gridmap"
)

func TestHTTPSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/grid", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"A1":{"A2":1},"A1":{"B1":2}}`))
	}))
	defer srv.Close()

	src, err := gridmap.NewHTTPSource(srv.URL, "/api/grid", srv.Client())
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/api/grid", src.Endpoint())

	adj, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, adj["A1"], 2)
}

func TestHTTPSource_StatusIsSoftFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src, err := gridmap.NewHTTPSource(srv.URL, "grid", nil)
	require.NoError(t, err)

	_, err = src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")

	g, err := gridmap.NewBuilder(src).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
}

func TestHTTPSource_MalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"bad weight": `{"A1":{"A2":"abc"}}`,
		"truncated":  `{"A1":{"A2":1}`,
		"not object": `[1,2]`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			src, err := gridmap.NewHTTPSource(srv.URL, "grid", srv.Client())
			require.NoError(t, err)

			_, err = src.Fetch(context.Background())
			require.ErrorIs(t, err, gridmap.ErrPayload)

			g, err := gridmap.NewBuilder(src).Load(context.Background())
			require.ErrorIs(t, err, gridmap.ErrPayload)
			assert.NotErrorIs(t, err, gridmap.ErrFetch)
			assert.Nil(t, g)
		})
	}
}

func TestNewHTTPSource_InvalidBase(t *testing.T) {
	for _, base := range []string{"", "localhost:8080", "://bad"} {
		_, err := gridmap.NewHTTPSource(base, "/grid", nil)
		assert.Error(t, err, base)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"A1":{"A2":1},"A2":{"A1":1}}`), 0o600))

	g, err := gridmap.NewBuilder(gridmap.FileSource{Path: path}).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 2, g.ConnectionCount())
}

func TestFileSource_Missing(t *testing.T) {
	src := gridmap.FileSource{Path: filepath.Join(t.TempDir(), "absent.json")}
	_, err := gridmap.NewBuilder(src).Acquire(context.Background())
	require.ErrorIs(t, err, gridmap.ErrFetch)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSource_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"A1":`), 0o600))

	b := gridmap.NewBuilder(gridmap.FileSource{Path: path})
	_, err := b.Acquire(context.Background())
	require.ErrorIs(t, err, gridmap.ErrPayload)
	assert.NotErrorIs(t, err, gridmap.ErrFetch)

	g, err := b.Load(context.Background())
	require.ErrorIs(t, err, gridmap.ErrPayload)
	assert.ErrorContains(t, err, path)
	assert.Nil(t, g)
}
