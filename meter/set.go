package meter

import (
	"fmt"
	"strings"

	"capacitorlab/circuit"
	"capacitorlab/utils"
)

// Set 一个电路的全部电表
type Set struct {
	Capacitance  *Meter     // 电容表
	PlateCharge  *Meter     // 电荷表
	StoredEnergy *Meter     // 储能表
	EField       *Meter     // E 场表
	Voltmeter    *Voltmeter // 电压表
}

// NewSet 为电路第一条支路创建电表
func NewSet(c *circuit.Circuit) *Set {
	b := c.Branch()
	return &Set{
		Capacitance:  NewCapacitanceMeter(b),
		PlateCharge:  NewPlateChargeMeter(b),
		StoredEnergy: NewStoredEnergyMeter(b),
		EField:       NewEFieldMeter(b),
		Voltmeter:    NewVoltmeter(c),
	}
}

// Meters 条形电表列表
func (s *Set) Meters() []*Meter {
	return []*Meter{s.Capacitance, s.PlateCharge, s.StoredEnergy, s.EField}
}

// Visibility 按名称获取可见性属性
func (s *Set) Visibility(name string) (*utils.Property[bool], error) {
	name = strings.ToLower(name)
	if name == "voltmeter" {
		return s.Voltmeter.Visible, nil
	}
	for _, m := range s.Meters() {
		if m.Name == name {
			return m.Visible, nil
		}
	}
	return nil, fmt.Errorf("未知电表: %s", name)
}

// Reset 恢复全部电表
func (s *Set) Reset() {
	for _, m := range s.Meters() {
		m.Reset()
	}
	s.Voltmeter.Reset()
}
