// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/internal/cli"
	"github.com/katalvlaran/deliveryroute/internal/logging"
	"github.com/katalvlaran/deliveryroute/route"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := cli.Parse([]string{"-from", "A1", "-to", "G4", "-strategy", "scan", "-symmetric"}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &cli.Options{
		From: "A1", To: "G4",
		Strategy:  route.StrategyScan,
		Symmetric: true,
		LogLevel:  "warn",
		LogFormat: "text",
	}, opts)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	opts, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, opts)
	assert.Contains(t, out.String(), "routefind")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"unknown flag":   {"-nope"},
		"missing to":     {"-from", "A1"},
		"both sources":   {"-from", "A1", "-to", "A2", "-grid", "g.json", "-url", "http://x"},
		"bad strategy":   {"-from", "A1", "-to", "A2", "-strategy", "bellman"},
		"bad log format": {"-from", "A1", "-to", "A2", "-log-format", "xml"},
		"bad log level":  {"-from", "A1", "-to", "A2", "-log-level", "trace"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := cli.Parse(args, &bytes.Buffer{})
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, cli.ExitUsage, exitErr.Code)
		})
	}
}

func TestRun_DefaultGrid(t *testing.T) {
	var out bytes.Buffer
	err := cli.Run(context.Background(), &cli.Options{From: "A1", To: "A3"}, &out, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "A1 -> A2 -> A3 (2)\n", out.String())
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"A1":{"A2":1},"B1":{"B2":1}}`), 0o600))

	err := cli.Run(context.Background(), &cli.Options{GridFile: path, From: "A1", To: "B1"}, &bytes.Buffer{}, logging.Discard())
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitNoRoute, exitErr.Code)

	err = cli.Run(context.Background(), &cli.Options{GridFile: path, From: "A2", To: "A1", Symmetric: true}, &bytes.Buffer{}, logging.Discard())
	assert.NoError(t, err)
}

func TestRun_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"A1":{"B1":0.5},"B1":{"C1":0.25}}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := cli.Run(context.Background(), &cli.Options{URL: srv.URL + "/grid", From: "A1", To: "C1"}, &out, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, "A1 -> B1 -> C1 (0.75)\n", out.String())
}

func TestRun_FailureCodes(t *testing.T) {
	err := cli.Run(context.Background(), &cli.Options{From: "A1", To: "A1"}, &bytes.Buffer{}, logging.Discard())
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitFailure, exitErr.Code)

	err = cli.Run(context.Background(), &cli.Options{URL: "not a url", From: "A1", To: "A2"}, &bytes.Buffer{}, logging.Discard())
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
}
