package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	assert.Equal(t, "BATTERY_CONNECTED", ConnectionBatteryConnected.String())
	assert.Equal(t, "LIGHT_BULB_CONNECTED", ConnectionLightBulbConnected.String())
	assert.Equal(t, "OPEN_CIRCUIT", ConnectionOpenCircuit.String())
	assert.Equal(t, "SWITCH_IN_TRANSIT", ConnectionSwitchInTransit.String())
	assert.Equal(t, "Connection(9)", Connection(9).String())
}

func TestParseConnection(t *testing.T) {
	tests := map[string]Connection{
		"battery":           ConnectionBatteryConnected,
		"BULB":              ConnectionLightBulbConnected,
		"open":              ConnectionOpenCircuit,
		"open_circuit":      ConnectionOpenCircuit,
		"BATTERY_CONNECTED": ConnectionBatteryConnected,
	}
	for name, want := range tests {
		got, err := ParseConnection(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	// 拖动中不是可设定的状态
	_, err := ParseConnection("SWITCH_IN_TRANSIT")
	assert.Error(t, err)
	_, err = ParseConnection("ground")
	assert.Error(t, err)
}

func TestConnectionIsStable(t *testing.T) {
	assert.True(t, ConnectionOpenCircuit.IsStable())
	assert.True(t, ConnectionBatteryConnected.IsStable())
	assert.True(t, ConnectionLightBulbConnected.IsStable())
	assert.False(t, ConnectionSwitchInTransit.IsStable())
}
