package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	assert.Equal(t, NetList{"battery", "1.5"}, Fields("  battery 1.5   # 充电"))
	assert.Empty(t, Fields("# 只有注释"))
	assert.Empty(t, Fields(""))
}

func TestNetListParse(t *testing.T) {
	n := NetList{"1e-13", "x", "3"}
	v, err := n.Float64(0)
	require.NoError(t, err)
	assert.Equal(t, 1e-13, v)

	_, err = n.Float64(1)
	assert.Error(t, err)
	_, err = n.Float64(5)
	assert.Error(t, err)

	v, err = n.ParseFloat64(5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	i, err := n.ParseInt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, i)
	_, err = n.ParseInt(1, 1)
	assert.Error(t, err)

	s, err := n.String(1)
	require.NoError(t, err)
	assert.Equal(t, "x", s)

	assert.Equal(t, "1e-13 x 3", n.Export())
}
