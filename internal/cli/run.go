// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/internal/service"
	"github.com/katalvlaran/deliveryroute/route"
)

// Run loads the grid selected by opts, calculates the route and prints it
// to out. Failures are returned as *ExitError.
func Run(ctx context.Context, opts *Options, out io.Writer, logger *slog.Logger) error {
	src, err := sourceFor(opts)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	builderOpts := []gridmap.Option{gridmap.WithLogger(logger)}
	if opts.Symmetric {
		builderOpts = append(builderOpts, gridmap.WithSymmetric())
	}
	svc := service.NewRouteService(gridmap.NewBuilder(src, builderOpts...), logger, route.WithStrategy(opts.Strategy))

	r, err := svc.FindRoute(ctx, opts.From, opts.To)
	switch {
	case err == nil:
	case errors.Is(err, route.ErrNoRoute):
		return &ExitError{Code: ExitNoRoute, Message: err.Error()}
	default:
		return &ExitError{Code: ExitFailure, Message: err.Error()}
	}

	_, err = fmt.Fprintln(out, r.String())
	return err
}

func sourceFor(opts *Options) (gridmap.Source, error) {
	switch {
	case opts.GridFile != "":
		return gridmap.FileSource{Path: opts.GridFile}, nil
	case opts.URL != "":
		src, err := gridmap.NewHTTPSource(opts.URL, "", nil)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		adj, err := gridmap.Uniform(8, 8, decimal.NewFromInt(1), gridmap.Conn4)
		if err != nil {
			return nil, err
		}
		return gridmap.StaticSource(adj), nil
	}
}
