// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/core"
	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/internal/graphdb"
	"github.com/katalvlaran/deliveryroute/internal/logging"
	"github.com/katalvlaran/deliveryroute/internal/service"
	"github.com/katalvlaran/deliveryroute/position"
	"github.com/katalvlaran/deliveryroute/route"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, adj gridmap.Adjacency, ready Readiness) http.Handler {
	t.Helper()
	svc := service.NewRouteService(gridmap.NewBuilder(gridmap.StaticSource(adj)), logging.Discard())
	return NewRouter(logging.Discard(), RouterDependencies{
		Readiness:      ready,
		API:            NewAPIHandlers(logging.Discard(), svc),
		AllowedOrigins: []string{"http://ui.test"},
	})
}

func demoGrid(t *testing.T) gridmap.Adjacency {
	t.Helper()
	adj, err := gridmap.Uniform(8, 8, decimal.NewFromInt(1), gridmap.Conn4)
	require.NoError(t, err)
	return adj
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPostRoute(t *testing.T) {
	h := newTestRouter(t, demoGrid(t), nil)
	rec := do(h, http.MethodPost, "/api/routes", `{"startPoint":"A1","destinationPoint":"G4"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Path          []string        `json:"path"`
		TotalDistance json.RawMessage `json:"totalDistance"`
		Hops          int             `json:"hops"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "9", string(resp.TotalDistance), "distance is a JSON number")
	assert.Equal(t, 9, resp.Hops)
	require.Len(t, resp.Path, 10)
	assert.Equal(t, "A1", resp.Path[0])
	assert.Equal(t, "G4", resp.Path[9])
}

func TestGetRoute(t *testing.T) {
	h := newTestRouter(t, gridmap.Adjacency{
		"A1": {"A2": decimal.RequireFromString("2")},
		"A2": {"A3": decimal.RequireFromString("2")},
	}, nil)
	rec := do(h, http.MethodGet, "/api/routes?start=A1&destination=A3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"path":["A1","A2","A3"],"totalDistance":4,"hops":2}`, rec.Body.String())
}

func TestRoute_ErrorStatuses(t *testing.T) {
	h := newTestRouter(t, gridmap.Adjacency{
		"A1": {"A2": decimal.NewFromInt(1)},
		"B1": {"B2": decimal.NewFromInt(1)},
	}, nil)
	cases := []struct {
		name   string
		method string
		target string
		body   string
		want   int
	}{
		{"malformed json", http.MethodPost, "/api/routes", `{`, http.StatusBadRequest},
		{"missing field", http.MethodPost, "/api/routes", `{"startPoint":"A1"}`, http.StatusBadRequest},
		{"missing query", http.MethodGet, "/api/routes?start=A1", "", http.StatusBadRequest},
		{"bad coordinate", http.MethodGet, "/api/routes?start=A1&destination=A9", "", http.StatusBadRequest},
		{"same endpoints", http.MethodGet, "/api/routes?start=A1&destination=A1", "", http.StatusBadRequest},
		{"unknown destination", http.MethodGet, "/api/routes?start=A1&destination=H8", "", http.StatusBadRequest},
		{"no route", http.MethodGet, "/api/routes?start=A1&destination=B1", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(h, tc.method, tc.target, tc.body)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestGetGrid(t *testing.T) {
	h := newTestRouter(t, gridmap.Adjacency{"B1": {"A1": decimal.NewFromInt(1)}}, nil)
	rec := do(h, http.MethodGet, "/api/grid", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"positions":["A1","B1"],"connections":1}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	rec := do(newTestRouter(t, nil, nil), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := graphdb.NewReplayClient().Unreachable(errors.New("bolt unreachable"))
	rec = do(newTestRouter(t, nil, GridStoreReadiness{Store: down}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
	assert.Contains(t, rec.Body.String(), "grid store unreachable")

	rec = do(newTestRouter(t, nil, GridStoreReadiness{}), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code, "sources without a store are always ready")
}

func TestCORS(t *testing.T) {
	h := newTestRouter(t, nil, nil)
	req := httptest.NewRequest(http.MethodOptions, "/api/routes", nil)
	req.Header.Set("Origin", "http://ui.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://ui.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoute_EmptyGridUnavailable(t *testing.T) {
	src := gridmap.SourceFunc(func(context.Context) (gridmap.Adjacency, error) {
		return nil, errors.New("connection refused")
	})
	svc := service.NewRouteService(gridmap.NewBuilder(src), logging.Discard())
	h := NewRouter(logging.Discard(), RouterDependencies{API: NewAPIHandlers(logging.Discard(), svc)})

	rec := do(h, http.MethodGet, "/api/routes?start=A1&destination=A2", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "empty")

	rec = do(h, http.MethodGet, "/api/routes?start=A1&destination=A9", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code, "malformed input is still a client error")
}

func TestRoute_MalformedGridPayload(t *testing.T) {
	src := gridmap.SourceFunc(func(context.Context) (gridmap.Adjacency, error) {
		return nil, fmt.Errorf("%w: truncated", gridmap.ErrPayload)
	})
	svc := service.NewRouteService(gridmap.NewBuilder(src), logging.Discard())
	h := NewRouter(logging.Discard(), RouterDependencies{API: NewAPIHandlers(logging.Discard(), svc)})

	rec := do(h, http.MethodGet, "/api/routes?start=A1&destination=A2", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code, rec.Body.String())
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{position.ErrSyntax, http.StatusBadRequest},
		{core.ErrNonPositiveWeight, http.StatusBadRequest},
		{route.ErrEmptyGraph, http.StatusServiceUnavailable},
		{route.ErrNoRoute, http.StatusNotFound},
		{fmt.Errorf("calc: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{fmt.Errorf("%w: %w", service.ErrGrid, position.ErrSyntax), http.StatusInternalServerError},
		{context.Canceled, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
