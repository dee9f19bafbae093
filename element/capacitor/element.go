package capacitor

import (
	"fmt"

	"capacitorlab/maths"
	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// Capacitor 平行板电容
// 派生量不缓存，每次读取都按当前几何与电压计算，保证代数一致.
type Capacitor struct {
	epsilon float64 // 介电常数

	Location        *utils.Property[r3.Vec]  // 两板中心位置
	PlateSize       *utils.Property[r3.Vec]  // 板尺寸 X=宽 Y=厚 Z=深
	PlateSeparation *utils.Property[float64] // 板间距(m)
	PlateVoltage    *utils.Property[float64] // 板电压(V)
}

// New 创建电容
// 间距非正属于程序缺陷，直接 panic.
func New(config types.Config, location r3.Vec, width, separation, voltage float64) *Capacitor {
	if !(separation > 0) {
		panic(fmt.Errorf("电容板间距必须为正: %g", separation))
	}
	return &Capacitor{
		epsilon:         config.EpsilonZero,
		Location:        utils.NewProperty(location),
		PlateSize:       utils.NewProperty(r3.Vec{X: width, Y: config.PlateHeight, Z: width}),
		PlateSeparation: utils.NewProperty(separation),
		PlateVoltage:    utils.NewProperty(voltage),
	}
}

// NewDefault 以配置默认值创建电容
func NewDefault(config types.Config, location r3.Vec) *Capacitor {
	return New(config, location, config.PlateWidthRange.Default, config.PlateSeparationRange.Default, 0)
}

// SetPlateSize 设置板尺寸
func (c *Capacitor) SetPlateSize(width, height, depth float64) {
	c.PlateSize.Set(r3.Vec{X: width, Y: height, Z: depth})
}

// SetPlateWidth 设置正方形板边长，厚度不变
func (c *Capacitor) SetPlateWidth(width float64) {
	c.SetPlateSize(width, c.PlateSize.Get().Y, width)
}

// SetPlateSeparation 设置板间距
func (c *Capacitor) SetPlateSeparation(d float64) { c.PlateSeparation.Set(d) }

// SetPlateVoltage 设置板电压
func (c *Capacitor) SetPlateVoltage(v float64) { c.PlateVoltage.Set(v) }

// PlateArea 板面积 w·d
func (c *Capacitor) PlateArea() float64 {
	size := c.PlateSize.Get()
	return size.X * size.Z
}

// Capacitance 电容 ε₀·A/s
func (c *Capacitor) Capacitance() float64 {
	return c.epsilon * c.PlateArea() / c.PlateSeparation.Get()
}

// PlateCharge 板电荷 C·V
func (c *Capacitor) PlateCharge() float64 {
	return c.Capacitance() * c.PlateVoltage.Get()
}

// StoredEnergy 储能 Q²/(2C)
func (c *Capacitor) StoredEnergy() float64 {
	q := c.PlateCharge()
	return q * q / (2 * c.Capacitance())
}

// EffectiveEField 板间电场 Q/(ε₀·A)，符号跟随电荷
func (c *Capacitor) EffectiveEField() float64 {
	return c.PlateCharge() / (c.epsilon * c.PlateArea())
}

// TopPlateShape 上极板
func (c *Capacitor) TopPlateShape() maths.Box {
	size, loc := c.PlateSize.Get(), c.Location.Get()
	center := r3.Add(loc, r3.Vec{Y: c.PlateSeparation.Get()/2 + size.Y/2})
	return maths.NewBox(center, size)
}

// BottomPlateShape 下极板
func (c *Capacitor) BottomPlateShape() maths.Box {
	size, loc := c.PlateSize.Get(), c.Location.Get()
	center := r3.Sub(loc, r3.Vec{Y: c.PlateSeparation.Get()/2 + size.Y/2})
	return maths.NewBox(center, size)
}

// TopPlateCenter 上极板外表面中心，上刀铰点以此为基准
func (c *Capacitor) TopPlateCenter() r3.Vec {
	return r3.Add(c.Location.Get(), r3.Vec{Y: c.PlateSeparation.Get()/2 + c.PlateSize.Get().Y})
}

// BottomPlateCenter 下极板外表面中心
func (c *Capacitor) BottomPlateCenter() r3.Vec {
	return r3.Sub(c.Location.Get(), r3.Vec{Y: c.PlateSeparation.Get()/2 + c.PlateSize.Get().Y})
}

// Reset 恢复初始几何与电压
func (c *Capacitor) Reset() {
	c.Location.Reset()
	c.PlateSize.Reset()
	c.PlateSeparation.Reset()
	c.PlateVoltage.Reset()
}

// Debug 调试
func (c *Capacitor) Debug() string {
	return fmt.Sprintf("电容:%+.4e 板压:%+.4f 电荷:%+.4e 储能:%.4e",
		c.Capacitance(), c.PlateVoltage.Get(), c.PlateCharge(), c.StoredEnergy())
}
