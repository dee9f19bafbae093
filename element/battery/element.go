package battery

import (
	"fmt"
	"math"

	"capacitorlab/maths"
	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// Polarity 电池极性
type Polarity int8

// 极性常量
const (
	PolarityPositiveUp   Polarity = 1  // 正极朝上
	PolarityPositiveDown Polarity = -1 // 正极朝下
)

// Battery 电池
// 电压有符号，符号决定极性；范围由外部控件约束.
type Battery struct {
	Location *utils.Property[r3.Vec]  // 中心位置
	Voltage  *utils.Property[float64] // 电压(V)
	size     r3.Vec                   // 外形
}

// New 创建电池
func New(config types.Config, location r3.Vec, voltage float64) *Battery {
	return &Battery{
		Location: utils.NewProperty(location),
		Voltage:  utils.NewProperty(voltage),
		size:     config.BatterySize,
	}
}

// NewDefault 以配置默认值创建电池
func NewDefault(config types.Config) *Battery {
	return New(config, config.BatteryLocation, config.BatteryVoltageRange.Default)
}

// SetVoltage 设置电压
func (b *Battery) SetVoltage(v float64) { b.Voltage.Set(v) }

// Polarity 当前极性，零电压按正极朝上处理
func (b *Battery) Polarity() Polarity {
	if math.Signbit(b.Voltage.Get()) {
		return PolarityPositiveDown
	}
	return PolarityPositiveUp
}

// TopTerminalShape 上端子
func (b *Battery) TopTerminalShape() maths.Box {
	return b.terminal(1)
}

// BottomTerminalShape 下端子，电路参考地
func (b *Battery) BottomTerminalShape() maths.Box {
	return b.terminal(-1)
}

// terminal 端子为电池顶/底部的薄片
func (b *Battery) terminal(side float64) maths.Box {
	h := b.size.Y / 10
	center := r3.Add(b.Location.Get(), r3.Vec{Y: side * (b.size.Y/2 + h/2)})
	return maths.NewBox(center, r3.Vec{X: b.size.X / 2, Y: h, Z: b.size.Z / 2})
}

// Reset 恢复初始值
func (b *Battery) Reset() {
	b.Location.Reset()
	b.Voltage.Reset()
}

// Debug 调试
func (b *Battery) Debug() string {
	return fmt.Sprintf("电池:%+.4fV", b.Voltage.Get())
}
