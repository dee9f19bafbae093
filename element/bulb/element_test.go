package bulb

import (
	"math"
	"testing"

	"capacitorlab/types"

	"github.com/stretchr/testify/assert"
)

func TestLightBulb(t *testing.T) {
	config := types.DefaultConfig()
	b := New(config)
	assert.Equal(t, 5e12, b.Resistance)
	assert.InDelta(t, 3e-13, b.Current(1.5), 1e-25)
	assert.InDelta(t, 1.0, b.Brightness(1.5), 1e-12)
	assert.InDelta(t, 1.0, b.Brightness(-3), 1e-12, "亮度封顶为1")
	assert.InDelta(t, 0.5, b.Brightness(-0.75), 1e-12)
	assert.Zero(t, b.Brightness(0))
}

func TestLightBulbDischarge(t *testing.T) {
	b := New(types.DefaultConfig())
	c := 1e-13
	tau := b.TimeConstant(c)
	assert.InDelta(t, 0.5, tau, 1e-12)
	assert.InDelta(t, 1.5/math.E, b.Discharge(1.5, c, tau), 1e-12)
	assert.InDelta(t, 1.5, b.Discharge(1.5, c, 0), 1e-12)
	assert.Contains(t, b.Debug(1), "亮度")
}
