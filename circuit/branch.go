package circuit

import (
	"math"

	"capacitorlab/element/capacitor"
	sw "capacitorlab/element/switch"
	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// Branch 电容支路: 电容 + 联动开关
type Branch struct {
	circuit *Circuit
	Index   int // 支路序号

	Capacitor *capacitor.Capacitor // 电容
	Switch    *sw.Pair             // 开关对

	// DisconnectedPlateCharge 未接电池时的板电荷，板电压由 Q/C 推出
	DisconnectedPlateCharge *utils.Property[float64]
	// CurrentAmplitude 电流幅值 dQ/dt，每步更新
	CurrentAmplitude *utils.Property[float64]

	previousCharge float64
}

// wire 建立属性之间的传播
func (b *Branch) wire() {
	b.Switch.Connection.LazyLink(func(c, old types.Connection) {
		b.circuit.logf("支路%d 连接状态: %s -> %s", b.Index, old, c)
		b.propagate(c)
	})
	b.circuit.Battery.Voltage.LazyLink(func(v, _ float64) {
		if b.Connection() == types.ConnectionBatteryConnected {
			b.Capacitor.SetPlateVoltage(v)
		}
	})
	geometry := func(r3.Vec, r3.Vec) { b.updateIsolatedVoltage() }
	b.Capacitor.PlateSize.LazyLink(geometry)
	b.Capacitor.PlateSeparation.LazyLink(func(float64, float64) { b.updateIsolatedVoltage() })
	b.DisconnectedPlateCharge.LazyLink(func(float64, float64) { b.updateIsolatedVoltage() })
	b.propagate(b.Connection())
	b.previousCharge = b.Capacitor.PlateCharge()
}

// Connection 连接状态
func (b *Branch) Connection() types.Connection { return b.Switch.Connection.Get() }

// IsIsolated 是否与电池隔离且电荷守恒(断开或接灯泡)
func (b *Branch) IsIsolated() bool {
	switch b.Connection() {
	case types.ConnectionOpenCircuit, types.ConnectionLightBulbConnected:
		return true
	}
	return false
}

// SetDisconnectedPlateCharge 设置断开时的板电荷
func (b *Branch) SetDisconnectedPlateCharge(q float64) { b.DisconnectedPlateCharge.Set(q) }

// TotalVoltage 回路总电压
// 接电池为电池电压，接灯泡为板电压，断开或拖动中没有闭合回路，返回 NaN.
func (b *Branch) TotalVoltage() float64 {
	switch b.Connection() {
	case types.ConnectionBatteryConnected:
		return b.circuit.Battery.Voltage.Get()
	case types.ConnectionLightBulbConnected:
		return b.Capacitor.PlateVoltage.Get()
	}
	return math.NaN()
}

// LightBulbCurrent 流过灯泡的电流，未接灯泡为 0
func (b *Branch) LightBulbCurrent() float64 {
	if b.circuit.LightBulb == nil || b.Connection() != types.ConnectionLightBulbConnected {
		return 0
	}
	return b.circuit.LightBulb.Current(b.Capacitor.PlateVoltage.Get())
}

// propagate 连接状态变化后的电压传播
func (b *Branch) propagate(c types.Connection) {
	switch c {
	case types.ConnectionBatteryConnected:
		b.Capacitor.SetPlateVoltage(b.circuit.Battery.Voltage.Get())
	case types.ConnectionOpenCircuit, types.ConnectionLightBulbConnected:
		// 断开瞬间的电荷成为守恒量
		b.DisconnectedPlateCharge.Set(b.Capacitor.PlateCharge())
		b.updateIsolatedVoltage()
	case types.ConnectionSwitchInTransit:
		// 开关运动中电路不确定，保持原电压
	}
}

// updateIsolatedVoltage 隔离状态下 V = Q/C
func (b *Branch) updateIsolatedVoltage() {
	if !b.IsIsolated() {
		return
	}
	b.Capacitor.SetPlateVoltage(b.DisconnectedPlateCharge.Get() / b.Capacitor.Capacitance())
}

// step 灯泡放电并更新电流幅值
func (b *Branch) step(dt float64) {
	if bulb := b.circuit.LightBulb; bulb != nil && b.Connection() == types.ConnectionLightBulbConnected {
		c := b.Capacitor.Capacitance()
		v := bulb.Discharge(b.Capacitor.PlateVoltage.Get(), c, dt)
		if math.Abs(v) < b.circuit.config.MinPlateVoltage {
			v = 0
		}
		b.DisconnectedPlateCharge.Set(v * c)
	}
	q := b.Capacitor.PlateCharge()
	b.CurrentAmplitude.Set((q - b.previousCharge) / dt)
	b.previousCharge = q
}

// reset 恢复初始状态
func (b *Branch) reset() {
	b.Capacitor.Reset()
	b.Switch.Reset()
	b.DisconnectedPlateCharge.Reset()
	b.CurrentAmplitude.Reset()
	b.propagate(b.Connection())
	b.previousCharge = b.Capacitor.PlateCharge()
}
