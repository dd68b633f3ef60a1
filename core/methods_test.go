// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/deliveryroute/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[name]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[name](core.WithCapacity[name](4))
}

func (s *GraphSuite) TestAddIsInsertIfAbsent() {
	first := core.NewVertex(name("A1"))
	s.True(s.g.Add(first))
	s.False(s.g.Add(core.NewVertex(name("A1"))))
	s.False(s.g.Add(nil))

	got, ok := s.g.Find("A1")
	s.Require().True(ok)
	s.Same(first, got)
	s.Equal(1, s.g.Len())
}

func (s *GraphSuite) TestEnsureReturnsExisting() {
	v1, created := s.g.Ensure("A1")
	s.True(created)
	v2, created := s.g.Ensure("A1")
	s.False(created)
	s.Same(v1, v2)
}

func (s *GraphSuite) TestConnectToFirstWeightWins() {
	a, _ := s.g.Ensure("A1")
	b, _ := s.g.Ensure("A2")
	s.Require().NoError(a.ConnectTo(b, w("1")))
	s.Require().NoError(a.ConnectTo(b, w("5")))

	conns := a.Connections()
	s.Require().Len(conns, 1)
	s.True(conns[0].Weight().Equal(w("1")))
	s.True(a.IsConnectedTo(b))
	s.False(b.IsConnectedTo(a), "connections are directed")
}

func (s *GraphSuite) TestConnectToErrors() {
	a, _ := s.g.Ensure("A1")
	b, _ := s.g.Ensure("A2")
	s.ErrorIs(a.ConnectTo(nil, w("1")), core.ErrNilVertex)
	s.ErrorIs(a.ConnectTo(b, w("0")), core.ErrNonPositiveWeight)
	s.Zero(a.Degree())
}

func (s *GraphSuite) TestConnectionsSorted() {
	s.Require().NoError(s.g.Connect("A1", "C1", w("2")))
	s.Require().NoError(s.g.Connect("A1", "B1", w("2")))
	s.Require().NoError(s.g.Connect("A1", "A2", w("3")))
	s.Require().NoError(s.g.Connect("A1", "Z9", w("1")))

	a, _ := s.g.Find("A1")
	var targets []name
	for _, c := range a.Connections() {
		targets = append(targets, c.Target())
	}
	s.Equal([]name{"Z9", "B1", "C1", "A2"}, targets)
	s.Equal("(A1: [Z9, B1, C1, A2])", a.String())
}

func (s *GraphSuite) TestConnectInvalidWeightCreatesNothing() {
	s.ErrorIs(s.g.Connect("A1", "A2", w("-1")), core.ErrNonPositiveWeight)
	s.True(s.g.IsEmpty())
}

func (s *GraphSuite) TestRemoveStripsInbound() {
	s.Require().NoError(s.g.Connect("A1", "A2", w("1")))
	s.Require().NoError(s.g.Connect("B1", "A2", w("1")))
	s.Require().NoError(s.g.Connect("A2", "B1", w("1")))

	target, _ := s.g.Find("A2")
	s.True(s.g.Remove(target))
	s.False(s.g.Remove(target))
	s.False(s.g.Remove(nil))

	s.False(s.g.Has("A2"))
	a, _ := s.g.Find("A1")
	b, _ := s.g.Find("B1")
	s.Zero(a.Degree())
	s.Zero(b.Degree())
	s.Equal(0, s.g.ConnectionCount())
}

func (s *GraphSuite) TestAllSortedAndString() {
	for _, id := range []name{"B1", "A2", "A1"} {
		s.g.Ensure(id)
	}
	s.Equal([]name{"A1", "A2", "B1"}, s.g.IDs())
	s.Equal("[A1, A2, B1]", s.g.String())
	s.Equal("[]", core.NewGraph[name]().String())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestVertexString_NoConnections(t *testing.T) {
	require.Equal(t, "(A1: [])", core.NewVertex(name("A1")).String())
}
