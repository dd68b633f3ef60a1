// SPDX-License-Identifier: MIT

package graphdb

import (
	"context"
	"maps"
	"sync"
)

// Statement is one Cypher call seen by a ReplayClient.
type Statement struct {
	Query  string
	Params map[string]any
}

// ReplayClient is a Client that answers from results queued in advance and
// records the statements it was given. It lets grid store code run without
// a database.
type ReplayClient struct {
	mu          sync.Mutex
	reads       tape
	writes      tape
	fail        error
	unreachable error
}

type tape struct {
	seen    []Statement
	pending []Result
}

func (t *tape) play(cypher string, params map[string]any) Result {
	t.seen = append(t.seen, Statement{Query: cypher, Params: maps.Clone(params)})
	if len(t.pending) == 0 {
		return Result{}
	}
	res := t.pending[0]
	t.pending = t.pending[1:]

	return res
}

// NewReplayClient returns a client with nothing queued.
func NewReplayClient() *ReplayClient { return &ReplayClient{} }

// FailWith makes every later statement fail with err.
func (c *ReplayClient) FailWith(err error) *ReplayClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = err
	return c
}

// Unreachable makes VerifyConnectivity report err.
func (c *ReplayClient) Unreachable(err error) *ReplayClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unreachable = err
	return c
}

// QueueRead appends the answer for a later ExecuteRead.
func (c *ReplayClient) QueueRead(res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads.pending = append(c.reads.pending, res)
}

// QueueWrite appends the answer for a later ExecuteWrite.
func (c *ReplayClient) QueueWrite(res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes.pending = append(c.writes.pending, res)
}

func (c *ReplayClient) ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.replay(ctx, &c.reads, cypher, params)
}

func (c *ReplayClient) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error) {
	return c.replay(ctx, &c.writes, cypher, params)
}

func (c *ReplayClient) replay(ctx context.Context, t *tape, cypher string, params map[string]any) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return Result{}, c.fail
	}

	return t.play(cypher, params), nil
}

func (c *ReplayClient) VerifyConnectivity(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unreachable
}

func (c *ReplayClient) Close(context.Context) error { return nil }

// Reads returns the read statements seen so far.
func (c *ReplayClient) Reads() []Statement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Statement(nil), c.reads.seen...)
}

// Writes returns the write statements seen so far.
func (c *ReplayClient) Writes() []Statement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Statement(nil), c.writes.seen...)
}
