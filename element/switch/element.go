package sw

import (
	"fmt"
	"math"
	"sort"

	"capacitorlab/types"
	"capacitorlab/utils"

	"gonum.org/v1/gonum/spatial/r3"
)

// ConnectionPoint 开关可到达的连接点
type ConnectionPoint struct {
	Connection types.Connection // 该点代表的连接状态
	Angle      float64          // 上刀绝对角度(rad)
}

// Pair 双刀联动开关
// 一个电容的上下两刀由同一个角度属性驱动: 上刀为 θ，下刀恒为 −θ.
// 两刀没有各自的可变状态，不存在互相监听导致的重入.
type Pair struct {
	config types.Config
	layout Layout
	points []ConnectionPoint // 按角度升序，首个为最右端子
	offset float64           // 静止位置的绝对角度

	TopHinge    r3.Vec // 上刀铰点
	BottomHinge r3.Vec // 下刀铰点
	Length      float64

	Angle      *utils.Property[float64]          // 上刀相对角度(rad)
	Connection *utils.Property[types.Connection] // 连接状态

	dragging bool
}

// NewPair 创建开关对，初始停在 initial 对应的连接点
func NewPair(config types.Config, layout Layout, points []ConnectionPoint, initial types.Connection, topHinge, bottomHinge r3.Vec) (*Pair, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("开关至少需要两个连接点: %d", len(points))
	}
	points = append([]ConnectionPoint(nil), points...)
	sort.Slice(points, func(i, j int) bool { return points[i].Angle < points[j].Angle })
	p := &Pair{
		config:      config,
		layout:      layout,
		points:      points,
		TopHinge:    topHinge,
		BottomHinge: bottomHinge,
		Length:      config.SwitchLength,
	}
	seen := map[types.Connection]bool{}
	for _, pt := range points {
		if !pt.Connection.IsStable() {
			return nil, fmt.Errorf("连接点状态非法: %s", pt.Connection)
		}
		if seen[pt.Connection] {
			return nil, fmt.Errorf("连接点重复: %s", pt.Connection)
		}
		seen[pt.Connection] = true
		if pt.Angle < 0 || pt.Angle > math.Pi {
			return nil, fmt.Errorf("连接点角度超出 [0, π]: %s %g", pt.Connection, pt.Angle)
		}
		// 连接点必须落在判定为自身状态的分区内，否则松开时会吸附到别处
		if got := p.connectionFor(layout.Classify(config, pt.Angle)); got != pt.Connection {
			return nil, fmt.Errorf("连接点 %s 落在 %s 的分区内", pt.Connection, got)
		}
	}
	start, ok := p.point(initial)
	if !ok {
		return nil, fmt.Errorf("初始连接点不存在: %s", initial)
	}
	p.offset = start.Angle
	p.Angle = utils.NewProperty(0.0)
	p.Connection = utils.NewProperty(initial)
	return p, nil
}

// Layout 分区布局
func (p *Pair) Layout() Layout { return p.layout }

// Points 连接点列表副本
func (p *Pair) Points() []ConnectionPoint {
	return append([]ConnectionPoint(nil), p.points...)
}

// Offset 静止位置的绝对角度
func (p *Pair) Offset() float64 { return p.offset }

// MinAngle 最右连接点的相对角度
func (p *Pair) MinAngle() float64 { return p.points[0].Angle - p.offset }

// MaxAngle 最左连接点的相对角度
func (p *Pair) MaxAngle() float64 { return p.points[len(p.points)-1].Angle - p.offset }

// TopAngle 上刀相对角度
func (p *Pair) TopAngle() float64 { return p.Angle.Get() }

// BottomAngle 下刀相对角度
func (p *Pair) BottomAngle() float64 { return -p.Angle.Get() }

// SetAngle 同时设置两刀角度，越界钳位
func (p *Pair) SetAngle(angle float64) {
	p.Angle.Set(math.Max(p.MinAngle(), math.Min(p.MaxAngle(), angle)))
}

// SetBottomAngle 以下刀角度设置，等价于 SetAngle(−angle)
func (p *Pair) SetBottomAngle(angle float64) { p.SetAngle(-angle) }

// AbsoluteAngle 上刀绝对角度，限制在首末连接点之间
func (p *Pair) AbsoluteAngle() float64 {
	lo, hi := p.points[0].Angle, p.points[len(p.points)-1].Angle
	return math.Max(lo, math.Min(hi, p.Angle.Get()+p.offset))
}

// TopEnd 上刀末端位置
func (p *Pair) TopEnd() r3.Vec {
	a := p.AbsoluteAngle()
	return r3.Add(p.TopHinge, r3.Vec{X: p.Length * math.Cos(a), Y: p.Length * math.Sin(a)})
}

// BottomEnd 下刀末端位置，与上刀关于水平轴镜像
func (p *Pair) BottomEnd() r3.Vec {
	a := -p.AbsoluteAngle()
	return r3.Add(p.BottomHinge, r3.Vec{X: p.Length * math.Cos(a), Y: p.Length * math.Sin(a)})
}

// IsDragging 是否拖动中
func (p *Pair) IsDragging() bool { return p.dragging }

// StartDrag 按下开关，状态进入拖动中
func (p *Pair) StartDrag() {
	p.dragging = true
	p.Connection.Set(types.ConnectionSwitchInTransit)
}

// Drag 拖动到相对角度，连续跟随不吸附
func (p *Pair) Drag(angle float64) {
	if !p.dragging {
		p.StartDrag()
	}
	p.SetAngle(angle)
}

// DragTo 拖动到指针位置，角度为铰点指向指针的方向
func (p *Pair) DragTo(pointer r3.Vec) {
	raw := math.Atan2(pointer.Y-p.TopHinge.Y, pointer.X-p.TopHinge.X)
	if raw < 0 {
		// 指针落到铰点下方时取较近的水平方向
		if raw < -math.Pi/2 {
			raw = math.Pi
		} else {
			raw = 0
		}
	}
	p.Drag(raw - p.offset)
}

// Release 松开开关，按绝对角度所在分区吸附
func (p *Pair) Release() types.Connection {
	if !p.dragging {
		return p.Connection.Get()
	}
	p.dragging = false
	c := p.connectionFor(p.layout.Classify(p.config, p.AbsoluteAngle()))
	if pt, ok := p.point(c); ok {
		p.SetAngle(pt.Angle - p.offset)
	}
	p.Connection.Set(c)
	return c
}

// SetConnection 直接切换到指定连接点，会结束进行中的拖动
func (p *Pair) SetConnection(c types.Connection) error {
	pt, ok := p.point(c)
	if !ok {
		return fmt.Errorf("开关没有 %s 连接点", c)
	}
	p.dragging = false
	p.SetAngle(pt.Angle - p.offset)
	p.Connection.Set(c)
	return nil
}

// Reset 恢复静止位置
func (p *Pair) Reset() {
	p.dragging = false
	p.Angle.Reset()
	p.Connection.Reset()
}

// connectionFor 分区对应的连接状态
func (p *Pair) connectionFor(side Side) types.Connection {
	switch side {
	case SideRight:
		return p.points[0].Connection
	case SideCenter:
		return types.ConnectionOpenCircuit
	case SideLeft:
		return p.points[len(p.points)-1].Connection
	}
	panic(fmt.Errorf("未知开关分区: %s", side))
}

// point 查找连接点
func (p *Pair) point(c types.Connection) (ConnectionPoint, bool) {
	for _, pt := range p.points {
		if pt.Connection == c {
			return pt, true
		}
	}
	return ConnectionPoint{}, false
}
