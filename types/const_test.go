package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate(), "默认配置应合法")
	assert.Equal(t, 8.854e-12, config.EpsilonZero)
	assert.Equal(t, 3*math.Pi/8, config.SwitchOpenMin)
	assert.Equal(t, 5*math.Pi/8, config.SwitchOpenMax)
	assert.Equal(t, math.Pi/2, config.SwitchTwoSplit)
	assert.Greater(t, config.PlateSeparationRange.Min, 0.0, "板间距下界必须严格为正")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"间距下界为零", func(c *Config) { c.PlateSeparationRange.Min = 0 }},
		{"默认值越界", func(c *Config) { c.BatteryVoltageRange.Default = 3 }},
		{"范围颠倒", func(c *Config) { c.PlateWidthRange = Range{Min: 0.02, Max: 0.01, Default: 0.01} }},
		{"分区边界颠倒", func(c *Config) { c.SwitchOpenMin, c.SwitchOpenMax = c.SwitchOpenMax, c.SwitchOpenMin }},
		{"两态分界越界", func(c *Config) { c.SwitchTwoSplit = math.Pi }},
		{"灯泡电阻为零", func(c *Config) { c.LightBulbResistance = 0 }},
		{"介电常数为负", func(c *Config) { c.EpsilonZero = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestRange(t *testing.T) {
	r := Range{Min: -1.5, Max: 1.5, Default: 0}
	assert.True(t, r.Contains(1.5))
	assert.False(t, r.Contains(1.6))
	assert.Equal(t, 1.5, r.Clamp(2))
	assert.Equal(t, -1.5, r.Clamp(-2))
	assert.Equal(t, 0.3, r.Clamp(0.3))
	assert.Equal(t, 3.0, r.Length())
}
