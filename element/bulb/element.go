package bulb

import (
	"fmt"
	"math"

	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// LightBulb 灯泡，电容经其放电
type LightBulb struct {
	Location   *utils.Property[r3.Vec] // 位置
	Resistance float64                 // 电阻(Ω)
	maxCurrent float64                 // 亮度归一化电流
}

// New 创建灯泡
func New(config types.Config) *LightBulb {
	r := config.LightBulbResistance
	vmax := math.Max(math.Abs(config.BatteryVoltageRange.Min), math.Abs(config.BatteryVoltageRange.Max))
	return &LightBulb{
		Location:   utils.NewProperty(config.LightBulbLocation),
		Resistance: r,
		maxCurrent: vmax / r,
	}
}

// Current 灯泡两端电压为 v 时的电流
func (b *LightBulb) Current(v float64) float64 { return v / b.Resistance }

// Brightness 亮度 0..1，与电流幅值成正比
func (b *LightBulb) Brightness(v float64) float64 {
	if b.maxCurrent <= 0 {
		return 0
	}
	return math.Min(1, math.Abs(b.Current(v))/b.maxCurrent)
}

// TimeConstant 经灯泡放电的时间常数 R·C
func (b *LightBulb) TimeConstant(capacitance float64) float64 {
	return b.Resistance * capacitance
}

// Discharge 经过 dt 后的电压
func (b *LightBulb) Discharge(v, capacitance, dt float64) float64 {
	return v * math.Exp(-dt/b.TimeConstant(capacitance))
}

// Debug 调试
func (b *LightBulb) Debug(v float64) string {
	return fmt.Sprintf("灯泡电流:%+.4e 亮度:%.3f", b.Current(v), b.Brightness(v))
}
