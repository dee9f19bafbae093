package debug

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var plotColors = []color.Color{
	color.RGBA{R: 0xc7, G: 0x19, B: 0x79, A: 0xff},
	color.RGBA{R: 0x19, G: 0x87, B: 0xc7, A: 0xff},
	color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff},
}

// Plot 把指定单位的序列绘制为 PNG
// unit 为空时绘制板电荷.
func (list *Record) Plot(w io.Writer, unit string) error {
	if list.Len() == 0 {
		return fmt.Errorf("没有可绘制的记录")
	}
	if unit == "" {
		unit = "C"
	}
	p := plot.New()
	p.Title.Text = "capacitor lab"
	p.X.Label.Text = "t (s)"
	p.Y.Label.Text = unit
	p.Add(plotter.NewGrid())
	n := 0
	for _, s := range list.Series() {
		if s.Unit != unit {
			continue
		}
		xys := make(plotter.XYs, len(s.Data))
		for i, v := range s.Data {
			xys[i].X = list.Time[i]
			xys[i].Y = v
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("绘制 %s 失败: %w", s.Name, err)
		}
		l.Color = plotColors[n%len(plotColors)]
		p.Add(l)
		p.Legend.Add(s.Name, l)
		n++
	}
	if n == 0 {
		return fmt.Errorf("没有单位为 %s 的序列", unit)
	}
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
