// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deliveryroute/core"
)

func TestNewConnection_RejectsNonPositive(t *testing.T) {
	for _, weight := range []string{"0", "-1", "-0.0001"} {
		_, err := core.NewConnection(name("B"), w(weight))
		require.ErrorIs(t, err, core.ErrNonPositiveWeight, weight)
		require.ErrorIs(t, err, core.ErrValue, weight)
	}
}

func TestConnection_EqualityIgnoresWeight(t *testing.T) {
	a, err := core.NewConnection(name("B"), w("1"))
	require.NoError(t, err)
	b, err := core.NewConnection(name("B"), w("9.5"))
	require.NoError(t, err)
	c, err := core.NewConnection(name("C"), w("1"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.CoversIdentity("B"))
	assert.False(t, a.CoversIdentity("C"))
	assert.True(t, a.RelatesTo(core.NewVertex(name("B"))))
	assert.False(t, a.RelatesTo(nil))
}

func TestConnection_CompareWeightThenTarget(t *testing.T) {
	light, _ := core.NewConnection(name("Z"), w("1"))
	heavy, _ := core.NewConnection(name("A"), w("2"))
	lightA, _ := core.NewConnection(name("A"), w("1"))

	assert.Negative(t, light.Compare(heavy))
	assert.Positive(t, heavy.Compare(light))
	assert.Negative(t, lightA.Compare(light))
	assert.Zero(t, light.Compare(light))
}

func TestConnection_String(t *testing.T) {
	c, _ := core.NewConnection(name("A2"), w("1"))
	assert.Equal(t, "C(A2 | 1.0)", c.String())

	c, _ = core.NewConnection(name("B1"), w("2.125"))
	assert.Equal(t, "C(B1 | 2.125)", c.String())

	c, _ = core.NewConnection(name("B1"), w("0.1234567"))
	assert.Equal(t, "C(B1 | 0.12346)", c.String())
}
