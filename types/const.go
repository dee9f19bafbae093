package types

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// 物理常量
const (
	EpsilonZero = 8.854e-12 // 真空介电常数(F/m)
)

// Range 有界范围
type Range struct {
	Min     float64 // 最小值
	Max     float64 // 最大值
	Default float64 // 默认值
}

// Contains 是否在范围内(闭区间)
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Clamp 钳位到范围内
func (r Range) Clamp(v float64) float64 { return math.Max(r.Min, math.Min(r.Max, v)) }

// Length 范围长度
func (r Range) Length() float64 { return r.Max - r.Min }

// validate 检查范围合法
func (r Range) validate(name string) error {
	if r.Min > r.Max || !r.Contains(r.Default) {
		return fmt.Errorf("%s 范围非法: [%g, %g] 默认 %g", name, r.Min, r.Max, r.Default)
	}
	return nil
}

// Config 仿真配置
// 值类型，构造实体时显式传入，不存在进程级共享状态
type Config struct {
	EpsilonZero float64 // 介电常数(F/m)

	BatteryVoltageRange  Range   // 电池电压(V)
	PlateWidthRange      Range   // 板宽(m)，板深与板宽相同
	PlateSeparationRange Range   // 板间距(m)
	PlateHeight          float64 // 板厚(m)
	PlateChargeRange     Range   // 断开电路时的手动电荷(C)

	LightBulbResistance float64 // 灯泡电阻(Ω)
	MinPlateVoltage     float64 // 放电截止电压(V)

	SwitchOpenMin  float64 // 断开区下界(rad)
	SwitchOpenMax  float64 // 断开区上界(rad)
	SwitchTwoSplit float64 // 两态布局分界(rad)
	SwitchLength   float64 // 开关刀长度(m)
	SwitchGap      float64 // 铰点距极板的距离(m)

	Pitch float64 // 投影俯仰角(rad)
	Yaw   float64 // 投影偏航角(rad)
	Scale float64 // 视图单位/米

	BatteryLocation   r3.Vec  // 电池位置
	BatterySize       r3.Vec  // 电池外形
	CapacitorLocation r3.Vec  // 第一个电容位置
	CapacitorSpacing  float64 // 多电容时的水平间隔(m)
	LightBulbLocation r3.Vec  // 灯泡位置
	ProbeSize         float64 // 探针尖端边长(m)
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		EpsilonZero: EpsilonZero,

		BatteryVoltageRange:  Range{Min: -1.5, Max: 1.5, Default: 0},
		PlateWidthRange:      Range{Min: 0.01, Max: 0.02, Default: 0.01},
		PlateSeparationRange: Range{Min: 0.002, Max: 0.01, Default: 0.006},
		PlateHeight:          0.0005,
		PlateChargeRange:     Range{Min: -3e-12, Max: 3e-12, Default: 0},

		LightBulbResistance: 5e12,
		MinPlateVoltage:     1e-6,

		SwitchOpenMin:  3 * math.Pi / 8,
		SwitchOpenMax:  5 * math.Pi / 8,
		SwitchTwoSplit: math.Pi / 2,
		SwitchLength:   0.0096,
		SwitchGap:      0.0064,

		Pitch: 30 * math.Pi / 180,
		Yaw:   -45 * math.Pi / 180,
		Scale: 15000,

		BatteryLocation:   r3.Vec{X: 0.0065, Y: 0.030, Z: 0},
		BatterySize:       r3.Vec{X: 0.0037, Y: 0.0071, Z: 0.0037},
		CapacitorLocation: r3.Vec{X: 0.0305, Y: 0.030, Z: 0},
		CapacitorSpacing:  0.024,
		LightBulbLocation: r3.Vec{X: 0.0545, Y: 0.030, Z: 0},
		ProbeSize:         0.0002,
	}
}

// Validate 检查配置
func (c Config) Validate() error {
	if c.EpsilonZero <= 0 {
		return fmt.Errorf("介电常数必须为正: %g", c.EpsilonZero)
	}
	for name, r := range map[string]Range{
		"电池电压": c.BatteryVoltageRange,
		"板宽":   c.PlateWidthRange,
		"板间距":  c.PlateSeparationRange,
		"板电荷":  c.PlateChargeRange,
	} {
		if err := r.validate(name); err != nil {
			return err
		}
	}
	if c.PlateSeparationRange.Min <= 0 {
		return fmt.Errorf("板间距下界必须为正: %g", c.PlateSeparationRange.Min)
	}
	if c.PlateWidthRange.Min <= 0 {
		return fmt.Errorf("板宽下界必须为正: %g", c.PlateWidthRange.Min)
	}
	if c.LightBulbResistance <= 0 {
		return fmt.Errorf("灯泡电阻必须为正: %g", c.LightBulbResistance)
	}
	if !(0 < c.SwitchOpenMin && c.SwitchOpenMin < c.SwitchOpenMax && c.SwitchOpenMax < math.Pi) {
		return fmt.Errorf("开关分区边界非法: %g %g", c.SwitchOpenMin, c.SwitchOpenMax)
	}
	if c.SwitchTwoSplit <= 0 || c.SwitchTwoSplit >= math.Pi {
		return fmt.Errorf("两态分界非法: %g", c.SwitchTwoSplit)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("视图比例必须为正: %g", c.Scale)
	}
	return nil
}
