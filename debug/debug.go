package debug

import (
	"io"

	"capacitorlab/circuit"
)

// Debug 调试接口
type Debug interface {
	Init(c *circuit.Circuit)
	IsDebug() bool
	SetDebug(is bool)
	Update(c *circuit.Circuit, time float64)
	Render(w io.Writer) error
}

// None 不记录
type None struct{ is bool }

func (None) Init(c *circuit.Circuit)                 {}
func (none *None) IsDebug() bool                     { return none.is }
func (none *None) SetDebug(is bool)                  { none.is = is }
func (None) Update(c *circuit.Circuit, time float64) {}
func (None) Render(w io.Writer) error                { return nil }
