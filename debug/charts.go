package debug

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	*Record
}

// newLine 统一样式的折线图
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "t(s)",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	return line
}

func lineData(data []float64) []opts.LineData {
	items := make([]opts.LineData, len(data))
	for i, v := range data {
		items[i].Value = v
	}
	return items
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	if c.Record == nil || c.Len() == 0 {
		return fmt.Errorf("没有可绘制的记录")
	}
	series := c.Series()
	page := components.NewPage()
	page.PageTitle = "电容实验曲线"
	// 电压单独一张，两条曲线共用坐标
	lineV := newLine("电压曲线", "电池电压与板电压随时间变化")
	lineV.SetXAxis(c.Time)
	for _, s := range series {
		if s.Unit == "V" {
			lineV.AddSeries(s.Name, lineData(s.Data))
		}
	}
	page.AddCharts(lineV)
	for _, s := range series {
		if s.Unit == "V" {
			continue
		}
		line := newLine(s.Name+"曲线", fmt.Sprintf("%s(%s)随时间变化", s.Name, s.Unit))
		line.SetXAxis(c.Time).AddSeries(s.Name, lineData(s.Data))
		page.AddCharts(line)
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
