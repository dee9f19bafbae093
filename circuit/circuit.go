package circuit

import (
	"fmt"
	"log"
	"math"

	"capacitorlab/element/battery"
	"capacitorlab/element/bulb"
	"capacitorlab/element/capacitor"
	sw "capacitorlab/element/switch"
	"capacitorlab/maths"
	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// Circuit 电容电路
// 所有传播都在属性回调中同步完成，setter 返回时派生状态已一致.
type Circuit struct {
	config types.Config
	kind   Kind

	Battery   *battery.Battery // 电池
	LightBulb *bulb.LightBulb  // 灯泡，无灯泡电路为 nil
	Branches  []*Branch        // 每个电容一条支路

	Logger *log.Logger // 为 nil 时不输出
}

// New 创建电路
func New(config types.Config, opts Options) (*Circuit, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}
	if opts.Capacitors <= 0 {
		opts.Capacitors = 1
	}
	c := &Circuit{
		config:  config,
		kind:    opts.Kind,
		Battery: battery.NewDefault(config),
	}
	if opts.Kind.HasLightBulb() {
		c.LightBulb = bulb.New(config)
	}
	points := sw.DefaultPoints(opts.Layout, opts.Kind.HasLightBulb())
	for i := 0; i < opts.Capacitors; i++ {
		location := r3.Add(config.CapacitorLocation, r3.Vec{X: float64(i) * config.CapacitorSpacing})
		cp := capacitor.NewDefault(config, location)
		// 铰点按最大间距放置，拖动极板时开关不动
		reach := config.PlateSeparationRange.Max/2 + config.PlateHeight + config.SwitchGap
		pair, err := sw.NewPair(config, opts.Layout, points, types.ConnectionBatteryConnected,
			r3.Add(location, r3.Vec{Y: reach}), r3.Sub(location, r3.Vec{Y: reach}))
		if err != nil {
			return nil, fmt.Errorf("创建第%d个开关失败: %w", i+1, err)
		}
		b := &Branch{
			circuit:                 c,
			Index:                   i,
			Capacitor:               cp,
			Switch:                  pair,
			DisconnectedPlateCharge: utils.NewProperty(config.PlateChargeRange.Default),
			CurrentAmplitude:        utils.NewProperty(0.0),
		}
		b.wire()
		c.Branches = append(c.Branches, b)
	}
	return c, nil
}

// Config 配置
func (c *Circuit) Config() types.Config { return c.config }

// Kind 电路类型
func (c *Circuit) Kind() Kind { return c.kind }

// Branch 第一条支路
func (c *Circuit) Branch() *Branch { return c.Branches[0] }

// Capacitor 第一个电容
func (c *Circuit) Capacitor() *capacitor.Capacitor { return c.Branches[0].Capacitor }

// Connection 第一条支路的连接状态
func (c *Circuit) Connection() types.Connection { return c.Branches[0].Connection() }

// TotalVoltage 第一条支路的总电压
func (c *Circuit) TotalVoltage() float64 { return c.Branches[0].TotalVoltage() }

// SetBatteryVoltage 设置电池电压
func (c *Circuit) SetBatteryVoltage(v float64) { c.Battery.SetVoltage(v) }

// VoltageAt 探针处电压
// 上极板为板电压，下极板为参考地 0，电池正端子为电池电压，负端子为 0；
// 开关拖动中极板电位不确定，接触极板也返回 NaN.
// 探针不接触任何导体时返回 NaN，由调用方决定显示方式.
func (c *Circuit) VoltageAt(probe maths.Box) float64 {
	for _, b := range c.Branches {
		top := probe.Intersects(b.Capacitor.TopPlateShape())
		bottom := probe.Intersects(b.Capacitor.BottomPlateShape())
		if !top && !bottom {
			continue
		}
		switch {
		case b.Connection() == types.ConnectionSwitchInTransit:
			return math.NaN()
		case top:
			return b.Capacitor.PlateVoltage.Get()
		}
		return 0
	}
	if probe.Intersects(c.Battery.TopTerminalShape()) {
		return c.Battery.Voltage.Get()
	}
	if probe.Intersects(c.Battery.BottomTerminalShape()) {
		return 0
	}
	return math.NaN()
}

// Step 逐帧步进
func (c *Circuit) Step(dt float64) {
	if !(dt > 0) {
		return
	}
	for _, b := range c.Branches {
		b.step(dt)
	}
}

// Reset 恢复初始状态
func (c *Circuit) Reset() {
	c.Battery.Reset()
	for _, b := range c.Branches {
		b.reset()
	}
}

func (c *Circuit) logf(format string, v ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, v...)
	}
}
