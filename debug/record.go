package debug

import (
	"encoding/json"
	"io"

	"capacitorlab/circuit"

	"gonum.org/v1/gonum/floats"
)

// Series 一条时间序列
type Series struct {
	Name string    // 名称
	Unit string    // 单位
	Data []float64 // 数据
}

// Summary 序列统计
type Summary struct {
	Name  string  // 名称
	Unit  string  // 单位
	Min   float64 // 最小值
	Max   float64 // 最大值
	Final float64 // 末值
}

// Record 记录第一条支路的历史状态
type Record struct {
	Time           []float64 // 时间列
	Connection     []string  // 连接状态列
	BatteryVoltage []float64 // 电池电压列
	PlateVoltage   []float64 // 板电压列
	PlateCharge    []float64 // 板电荷列
	Capacitance    []float64 // 电容列
	StoredEnergy   []float64 // 储能列
	EField         []float64 // E 场列
	Current        []float64 // 电流幅值列

	paused bool // 暂停记录
}

// Init 初始化
func (list *Record) Init(c *circuit.Circuit) { *list = Record{paused: list.paused} }

func (list *Record) IsDebug() bool    { return !list.paused }
func (list *Record) SetDebug(is bool) { list.paused = !is }

// Update 记录数据
func (list *Record) Update(c *circuit.Circuit, time float64) {
	b := c.Branch()
	cp := b.Capacitor
	list.Time = append(list.Time, time)
	list.Connection = append(list.Connection, b.Connection().String())
	list.BatteryVoltage = append(list.BatteryVoltage, c.Battery.Voltage.Get())
	list.PlateVoltage = append(list.PlateVoltage, cp.PlateVoltage.Get())
	list.PlateCharge = append(list.PlateCharge, cp.PlateCharge())
	list.Capacitance = append(list.Capacitance, cp.Capacitance())
	list.StoredEnergy = append(list.StoredEnergy, cp.StoredEnergy())
	list.EField = append(list.EField, cp.EffectiveEField())
	list.Current = append(list.Current, b.CurrentAmplitude.Get())
}

// Len 记录条数
func (list *Record) Len() int { return len(list.Time) }

// Series 全部数值序列
func (list *Record) Series() []Series {
	return []Series{
		{Name: "电池电压", Unit: "V", Data: list.BatteryVoltage},
		{Name: "板电压", Unit: "V", Data: list.PlateVoltage},
		{Name: "板电荷", Unit: "C", Data: list.PlateCharge},
		{Name: "电容", Unit: "F", Data: list.Capacitance},
		{Name: "储能", Unit: "J", Data: list.StoredEnergy},
		{Name: "E场", Unit: "V/m", Data: list.EField},
		{Name: "电流", Unit: "A", Data: list.Current},
	}
}

// Summaries 各序列统计，空记录返回 nil
func (list *Record) Summaries() []Summary {
	if list.Len() == 0 {
		return nil
	}
	series := list.Series()
	out := make([]Summary, 0, len(series))
	for _, s := range series {
		out = append(out, Summary{
			Name:  s.Name,
			Unit:  s.Unit,
			Min:   floats.Min(s.Data),
			Max:   floats.Max(s.Data),
			Final: s.Data[len(s.Data)-1],
		})
	}
	return out
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
