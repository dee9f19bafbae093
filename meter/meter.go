package meter

import (
	"capacitorlab/circuit"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// Func 由支路状态计算读数的纯函数
type Func func(b *circuit.Branch) float64

// Meter 条形电表
// 读数始终是实时推导，Reset 只恢复可见性.
type Meter struct {
	Name    string                // 名称
	Visible *utils.Property[bool] // 可见性

	branch *circuit.Branch
	fn     Func
	value  *utils.Property[float64]
}

// New 创建电表并订阅电容的尺寸、间距、电压
func New(name string, b *circuit.Branch, fn Func, visible bool) *Meter {
	m := &Meter{
		Name:    name,
		Visible: utils.NewProperty(visible),
		branch:  b,
		fn:      fn,
		value:   utils.NewProperty(fn(b)),
	}
	c := b.Capacitor
	c.PlateSize.LazyLink(func(r3.Vec, r3.Vec) { m.update() })
	c.PlateSeparation.LazyLink(func(float64, float64) { m.update() })
	c.PlateVoltage.LazyLink(func(float64, float64) { m.update() })
	return m
}

// Value 只读读数
func (m *Meter) Value() utils.ReadOnly[float64] { return m.value }

// Get 当前读数
func (m *Meter) Get() float64 { return m.value.Get() }

// Branch 被观测的支路
func (m *Meter) Branch() *circuit.Branch { return m.branch }

// Reset 恢复可见性
func (m *Meter) Reset() { m.Visible.Reset() }

func (m *Meter) update() { m.value.Set(m.fn(m.branch)) }

// NewCapacitanceMeter 电容表
func NewCapacitanceMeter(b *circuit.Branch) *Meter {
	return New("capacitance", b, func(b *circuit.Branch) float64 { return b.Capacitor.Capacitance() }, true)
}

// NewPlateChargeMeter 板电荷表
func NewPlateChargeMeter(b *circuit.Branch) *Meter {
	return New("charge", b, func(b *circuit.Branch) float64 { return b.Capacitor.PlateCharge() }, false)
}

// NewStoredEnergyMeter 储能表
func NewStoredEnergyMeter(b *circuit.Branch) *Meter {
	return New("energy", b, func(b *circuit.Branch) float64 { return b.Capacitor.StoredEnergy() }, false)
}

// NewEFieldMeter E 场表
func NewEFieldMeter(b *circuit.Branch) *Meter {
	return New("efield", b, func(b *circuit.Branch) float64 { return b.Capacitor.EffectiveEField() }, false)
}
