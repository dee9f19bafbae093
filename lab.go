package capacitorlab

import (
	"fmt"
	"io"
	"log"
	"math"

	"capacitorlab/circuit"
	"capacitorlab/debug"
	"capacitorlab/load"
	"capacitorlab/maths"
	"capacitorlab/meter"
	"capacitorlab/types"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lab 电容实验: 电路 + 电表 + 记录
type Lab struct {
	Circuit   *circuit.Circuit // 电路
	Meters    *meter.Set       // 电表
	Transform *maths.Transform // 模型/视图变换
	Debug     debug.Debug      // 历史记录
	Time      float64          // 仿真时间(s)

	Logger  *log.Logger // 日志
	Verbose bool        // 输出每条场景指令
}

// NewLab 初始化
func NewLab(config types.Config, opts circuit.Options, logger *log.Logger) (*Lab, error) {
	c, err := circuit.New(config, opts)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	c.Logger = logger
	lab := &Lab{
		Circuit:   c,
		Meters:    meter.NewSet(c),
		Transform: maths.NewTransform(config.Scale, config.Pitch, config.Yaw),
		Debug:     &debug.None{},
		Logger:    logger,
	}
	return lab, nil
}

// SetDebug 设置记录器，开启记录并记录初始状态
func (lab *Lab) SetDebug(d debug.Debug) {
	lab.Debug = d
	d.SetDebug(true)
	d.Init(lab.Circuit)
	lab.record()
}

// Render 输出记录
func (lab *Lab) Render(w io.Writer) error { return lab.Debug.Render(w) }

// record 记录开启时追加当前状态
func (lab *Lab) record() {
	if lab.Debug.IsDebug() {
		lab.Debug.Update(lab.Circuit, lab.Time)
	}
}

// Load 加载并执行场景文件
func (lab *Lab) Load(filename string) error {
	cmds, err := load.LoadFile(filename)
	if err != nil {
		return err
	}
	return lab.Run(cmds)
}

// Run 依次执行场景指令，遇错停止
func (lab *Lab) Run(cmds []load.Command) error {
	for _, cmd := range cmds {
		if lab.Verbose {
			lab.Logger.Printf("执行 %s", cmd)
		}
		if err := lab.Exec(cmd); err != nil {
			return err
		}
		if lab.Verbose {
			lab.Logger.Printf("%s %s", lab.Circuit.Battery.Debug(), lab.Circuit.Capacitor().Debug())
		}
	}
	return nil
}

// Exec 执行一条场景指令
func (lab *Lab) Exec(cmd load.Command) error {
	b := lab.Circuit.Branch()
	config := lab.Circuit.Config()
	switch cmd.Op {
	case load.OpBattery:
		v, err := rangeArg(cmd, 0, config.BatteryVoltageRange)
		if err != nil {
			return err
		}
		lab.Circuit.SetBatteryVoltage(v)
	case load.OpSize:
		w, err := rangeArg(cmd, 0, config.PlateWidthRange)
		if err != nil {
			return err
		}
		d := w
		if cmd.Args.Len() > 1 {
			if d, err = rangeArg(cmd, 1, config.PlateWidthRange); err != nil {
				return err
			}
		}
		b.Capacitor.SetPlateSize(w, b.Capacitor.PlateSize.Get().Y, d)
	case load.OpSeparation:
		s, err := cmd.Args.Float64(0)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		if !(s > 0) {
			return cmd.Errorf("板间距必须为正: %g", s)
		}
		b.Capacitor.SetPlateSeparation(config.PlateSeparationRange.Clamp(s))
	case load.OpCharge:
		q, err := rangeArg(cmd, 0, config.PlateChargeRange)
		if err != nil {
			return err
		}
		b.SetDisconnectedPlateCharge(q)
	case load.OpSwitch:
		name, err := cmd.Args.String(0)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		c, err := types.ParseConnection(name)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		if err := b.Switch.SetConnection(c); err != nil {
			return cmd.Errorf("%v", err)
		}
	case load.OpDrag:
		a, err := cmd.Args.Float64(0)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		b.Switch.Drag(a)
	case load.OpRelease:
		b.Switch.Release()
	case load.OpStep:
		dt, err := cmd.Args.Float64(0)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		n, err := cmd.Args.ParseInt(1, 1)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		if !(dt > 0) || n <= 0 {
			return cmd.Errorf("步长与步数必须为正: %g %d", dt, n)
		}
		for i := 0; i < n; i++ {
			lab.Step(dt)
		}
		return nil
	case load.OpProbe:
		p, err := probePoint(cmd)
		if err != nil {
			return err
		}
		if err := lab.moveProbe(cmd, p); err != nil {
			return err
		}
	case load.OpView:
		x, err := cmd.Args.Float64(1)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		y, err := cmd.Args.Float64(2)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		if err := lab.moveProbe(cmd, lab.Transform.ViewToModel(r2.Vec{X: x, Y: y})); err != nil {
			return err
		}
	case load.OpShow, load.OpHide:
		name, err := cmd.Args.String(0)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		visible, err := lab.Meters.Visibility(name)
		if err != nil {
			return cmd.Errorf("%v", err)
		}
		visible.Set(cmd.Op == load.OpShow)
	case load.OpReset:
		lab.Reset()
	default:
		return cmd.Errorf("不支持的指令")
	}
	lab.record()
	return nil
}

// rangeArg 解析第 i 个参数并钳位到控件范围，NaN 视为错误
func rangeArg(cmd load.Command, i int, r types.Range) (float64, error) {
	v, err := cmd.Args.Float64(i)
	if err != nil {
		return 0, cmd.Errorf("%v", err)
	}
	if math.IsNaN(v) {
		return 0, cmd.Errorf("第%d个参数不是数值: NaN", i+1)
	}
	return r.Clamp(v), nil
}

// probePoint 解析探针坐标，z 缺省为 0
func probePoint(cmd load.Command) (r3.Vec, error) {
	var p r3.Vec
	var err error
	if p.X, err = cmd.Args.Float64(1); err != nil {
		return p, cmd.Errorf("%v", err)
	}
	if p.Y, err = cmd.Args.Float64(2); err != nil {
		return p, cmd.Errorf("%v", err)
	}
	if p.Z, err = cmd.Args.ParseFloat64(3, 0); err != nil {
		return p, cmd.Errorf("%v", err)
	}
	return p, nil
}

// moveProbe 按 +/- 移动电压表探针
func (lab *Lab) moveProbe(cmd load.Command, p r3.Vec) error {
	vm := lab.Meters.Voltmeter
	sign, err := cmd.Args.String(0)
	if err != nil {
		return cmd.Errorf("%v", err)
	}
	switch sign {
	case "+":
		vm.PositiveProbe.Set(p)
	case "-":
		vm.NegativeProbe.Set(p)
	default:
		return cmd.Errorf("探针必须为 + 或 -: %q", sign)
	}
	return nil
}

// Step 步进
func (lab *Lab) Step(dt float64) {
	if !(dt > 0) {
		return
	}
	lab.Circuit.Step(dt)
	lab.Time += dt
	lab.record()
}

// Reset 恢复初始状态，时间与记录不清空
func (lab *Lab) Reset() {
	lab.Circuit.Reset()
	lab.Meters.Reset()
}

// Reading 电表读数
type Reading struct {
	Name    string  // 名称
	Unit    string  // 单位
	Value   float64 // 读数，电压表探针悬空时为 NaN
	Visible bool    // 是否可见
}

// String 格式化读数
func (r Reading) String() string {
	if math.IsNaN(r.Value) {
		return fmt.Sprintf("%s: -", r.Name)
	}
	return fmt.Sprintf("%s: %.4e %s", r.Name, r.Value, r.Unit)
}

// Readings 全部电表读数
func (lab *Lab) Readings() []Reading {
	units := map[string]string{"capacitance": "F", "charge": "C", "energy": "J", "efield": "V/m"}
	var out []Reading
	for _, m := range lab.Meters.Meters() {
		out = append(out, Reading{Name: m.Name, Unit: units[m.Name], Value: m.Get(), Visible: m.Visible.Get()})
	}
	vm := lab.Meters.Voltmeter
	out = append(out, Reading{Name: "voltmeter", Unit: "V", Value: vm.Get(), Visible: vm.Visible.Get()})
	return out
}
