package types

import (
	"fmt"
	"strings"
)

// Connection 电路连接状态
type Connection uint8

// 连接状态常量定义
const (
	ConnectionOpenCircuit        Connection = iota // 断开
	ConnectionBatteryConnected                     // 连接电池
	ConnectionLightBulbConnected                   // 连接灯泡
	ConnectionSwitchInTransit                      // 开关拖动中
)

// connectionName 状态名称映射
var connectionName = map[Connection]string{
	ConnectionOpenCircuit:        "OPEN_CIRCUIT",
	ConnectionBatteryConnected:   "BATTERY_CONNECTED",
	ConnectionLightBulbConnected: "LIGHT_BULB_CONNECTED",
	ConnectionSwitchInTransit:    "SWITCH_IN_TRANSIT",
}

// mapConnection 脚本中可用的简写
var mapConnection = map[string]Connection{
	"open":    ConnectionOpenCircuit,
	"battery": ConnectionBatteryConnected,
	"bulb":    ConnectionLightBulbConnected,
}

// String 返回连接状态的字符串表示
func (c Connection) String() string {
	if name, ok := connectionName[c]; ok {
		return name
	}
	return fmt.Sprintf("Connection(%d)", uint8(c))
}

// IsStable 是否为松开开关后可停留的状态
func (c Connection) IsStable() bool {
	switch c {
	case ConnectionOpenCircuit, ConnectionBatteryConnected, ConnectionLightBulbConnected:
		return true
	}
	return false
}

// ParseConnection 通过名称获取连接状态
func ParseConnection(name string) (Connection, error) {
	if c, ok := mapConnection[strings.ToLower(name)]; ok {
		return c, nil
	}
	for c, n := range connectionName {
		if strings.EqualFold(n, name) && c.IsStable() {
			return c, nil
		}
	}
	return ConnectionOpenCircuit, fmt.Errorf("未知连接状态: %s", name)
}
