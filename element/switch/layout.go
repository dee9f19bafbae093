package sw

import (
	"fmt"
	"math"

	"capacitorlab/types"
)

// Side 开关角度分区
type Side uint8

// 分区常量
const (
	SideRight  Side = iota // 右侧端子(角度小)
	SideCenter             // 中间断开区
	SideLeft               // 左侧端子(角度大)
)

// String 分区名称
func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideCenter:
		return "center"
	case SideLeft:
		return "left"
	}
	return fmt.Sprintf("Side(%d)", uint8(s))
}

// Layout 分区布局
type Layout uint8

// 布局常量
const (
	LayoutThreeZone Layout = iota // 右/断开/左 三分区
	LayoutTwoState                // 在分界处一分为二，无断开区
)

// String 布局名称
func (l Layout) String() string {
	if l == LayoutTwoState {
		return "two-state"
	}
	return "three-zone"
}

// Zone 角度分区 [Min, Max)，Closed 时为 [Min, Max]
type Zone struct {
	Min    float64 // 下界(rad)
	Max    float64 // 上界(rad)
	Closed bool    // 是否包含上界
	Side   Side    // 对应分区
}

// Contains 绝对角度是否落在分区内
func (z Zone) Contains(angle float64) bool {
	if z.Closed {
		return angle >= z.Min && angle <= z.Max
	}
	return angle >= z.Min && angle < z.Max
}

// Zones 布局下的全部分区，覆盖 [0, π] 且互不重叠
func (l Layout) Zones(config types.Config) []Zone {
	if l == LayoutTwoState {
		return []Zone{
			{Min: 0, Max: config.SwitchTwoSplit, Side: SideRight},
			{Min: config.SwitchTwoSplit, Max: math.Pi, Closed: true, Side: SideLeft},
		}
	}
	return []Zone{
		{Min: 0, Max: config.SwitchOpenMin, Side: SideRight},
		{Min: config.SwitchOpenMin, Max: config.SwitchOpenMax, Side: SideCenter},
		{Min: config.SwitchOpenMax, Max: math.Pi, Closed: true, Side: SideLeft},
	}
}

// Classify 判定绝对角度所在分区
// 分区覆盖全部合法角度，落空说明调用方传入了非法角度，属于程序缺陷.
func (l Layout) Classify(config types.Config, angle float64) Side {
	for _, z := range l.Zones(config) {
		if z.Contains(angle) {
			return z.Side
		}
	}
	panic(fmt.Errorf("开关角度不在任何分区内: %g (%s)", angle, l))
}

// DefaultPoints 默认连接点
// 两态布局只保留两个端子，使每个端子落在不同分区.
func DefaultPoints(layout Layout, withBulb bool) []ConnectionPoint {
	right := types.ConnectionOpenCircuit
	if withBulb {
		right = types.ConnectionLightBulbConnected
	}
	if layout == LayoutTwoState {
		return []ConnectionPoint{
			{Connection: right, Angle: math.Pi / 4},
			{Connection: types.ConnectionBatteryConnected, Angle: 3 * math.Pi / 4},
		}
	}
	points := []ConnectionPoint{
		{Connection: types.ConnectionOpenCircuit, Angle: math.Pi / 2},
		{Connection: types.ConnectionBatteryConnected, Angle: 3 * math.Pi / 4},
	}
	if withBulb {
		points = append([]ConnectionPoint{{Connection: types.ConnectionLightBulbConnected, Angle: math.Pi / 4}}, points...)
	}
	return points
}
