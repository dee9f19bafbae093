package battery

import (
	"testing"

	"capacitorlab/types"

	"github.com/stretchr/testify/assert"
)

func TestBattery(t *testing.T) {
	config := types.DefaultConfig()
	b := NewDefault(config)
	assert.Zero(t, b.Voltage.Get())
	assert.Equal(t, PolarityPositiveUp, b.Polarity())

	n := 0
	b.Voltage.LazyLink(func(float64, float64) { n++ })
	b.SetVoltage(-1.5)
	b.SetVoltage(-1.5)
	assert.Equal(t, 1, n)
	assert.Equal(t, PolarityPositiveDown, b.Polarity())

	b.Reset()
	assert.Zero(t, b.Voltage.Get())
	assert.Contains(t, b.Debug(), "电池")
}

func TestBatteryTerminals(t *testing.T) {
	config := types.DefaultConfig()
	b := NewDefault(config)
	top, bottom := b.TopTerminalShape(), b.BottomTerminalShape()
	loc := config.BatteryLocation
	assert.Greater(t, top.Min.Y, loc.Y+config.BatterySize.Y/2-1e-12)
	assert.Less(t, bottom.Max.Y, loc.Y-config.BatterySize.Y/2+1e-12)
	assert.False(t, top.Intersects(bottom))
}
