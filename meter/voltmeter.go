package meter

import (
	"capacitorlab/circuit"
	"capacitorlab/maths"
	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// Voltmeter 电压表，读数为正负探针处电压之差
type Voltmeter struct {
	Visible       *utils.Property[bool]   // 可见性
	PositiveProbe *utils.Property[r3.Vec] // 正探针尖端
	NegativeProbe *utils.Property[r3.Vec] // 负探针尖端

	circuit   *circuit.Circuit
	probeSize float64
	value     *utils.Property[float64]
}

// NewVoltmeter 创建电压表，探针初始悬空
func NewVoltmeter(c *circuit.Circuit) *Voltmeter {
	config := c.Config()
	rest := r3.Sub(config.CapacitorLocation, r3.Vec{Y: 0.02})
	v := &Voltmeter{
		Visible:       utils.NewProperty(false),
		PositiveProbe: utils.NewProperty(rest),
		NegativeProbe: utils.NewProperty(r3.Add(rest, r3.Vec{X: 0.004})),
		circuit:       c,
		probeSize:     config.ProbeSize,
	}
	v.value = utils.NewProperty(v.measure())

	probe := func(r3.Vec, r3.Vec) { v.update() }
	scalar := func(float64, float64) { v.update() }
	v.PositiveProbe.LazyLink(probe)
	v.NegativeProbe.LazyLink(probe)
	c.Battery.Voltage.LazyLink(scalar)
	c.Battery.Location.LazyLink(probe)
	for _, b := range c.Branches {
		b.Capacitor.PlateSize.LazyLink(probe)
		b.Capacitor.PlateSeparation.LazyLink(scalar)
		b.Capacitor.PlateVoltage.LazyLink(scalar)
		b.Capacitor.Location.LazyLink(probe)
		b.Switch.Connection.LazyLink(func(types.Connection, types.Connection) { v.update() })
	}
	return v
}

// Value 只读读数，探针悬空时为 NaN
func (v *Voltmeter) Value() utils.ReadOnly[float64] { return v.value }

// Get 当前读数
func (v *Voltmeter) Get() float64 { return v.value.Get() }

// MoveProbes 移动探针
func (v *Voltmeter) MoveProbes(positive, negative r3.Vec) {
	v.PositiveProbe.Set(positive)
	v.NegativeProbe.Set(negative)
}

// Reset 恢复可见性与探针位置
func (v *Voltmeter) Reset() {
	v.Visible.Reset()
	v.PositiveProbe.Reset()
	v.NegativeProbe.Reset()
}

func (v *Voltmeter) measure() float64 {
	vp := v.circuit.VoltageAt(maths.PointBox(v.PositiveProbe.Get(), v.probeSize))
	vn := v.circuit.VoltageAt(maths.PointBox(v.NegativeProbe.Get(), v.probeSize))
	return vp - vn
}

func (v *Voltmeter) update() { v.value.Set(v.measure()) }
