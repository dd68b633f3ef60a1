// SPDX-License-Identifier: MIT

package route_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/gridmap"
	"github.com/katalvlaran/deliveryroute/route"
)

// TestCalculate_SharedGraph runs many calculations against one graph at
// once; search state must stay per call.
func TestCalculate_SharedGraph(t *testing.T) {
	adj, err := gridmap.Uniform(8, 8, dec("1"), gridmap.Conn4)
	require.NoError(t, err)
	g, err := gridmap.Build(adj)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := strategies[i%2]
			r, err := route.Calculate(context.Background(), g, pos("A1"), pos("H8"), route.WithStrategy(s))
			if err == nil && !r.Distance.Equal(dec("14")) {
				err = context.DeadlineExceeded // any non-nil marker
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
