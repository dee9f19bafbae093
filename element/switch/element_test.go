package sw

import (
	"math"
	"testing"

	"capacitorlab/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func newPair(t *testing.T, layout Layout, withBulb bool) *Pair {
	t.Helper()
	p, err := NewPair(types.DefaultConfig(), layout, DefaultPoints(layout, withBulb),
		types.ConnectionBatteryConnected, r3.Vec{Y: 1}, r3.Vec{Y: -1})
	require.NoError(t, err, "创建开关失败")
	return p
}

func TestZonesPartition(t *testing.T) {
	config := types.DefaultConfig()
	for _, layout := range []Layout{LayoutThreeZone, LayoutTwoState} {
		zones := layout.Zones(config)
		for i := 0; i <= 1000; i++ {
			a := math.Pi * float64(i) / 1000
			n := 0
			for _, z := range zones {
				if z.Contains(a) {
					n++
				}
			}
			assert.Equal(t, 1, n, "%s 角度 %g 应恰好落在一个分区", layout, a)
		}
	}
}

func TestClassifyBoundaries(t *testing.T) {
	config := types.DefaultConfig()
	tests := []struct {
		layout Layout
		angle  float64
		want   Side
	}{
		{LayoutThreeZone, 0, SideRight},
		{LayoutThreeZone, math.Nextafter(3*math.Pi/8, 0), SideRight},
		{LayoutThreeZone, 3 * math.Pi / 8, SideCenter},
		{LayoutThreeZone, math.Pi / 2, SideCenter},
		{LayoutThreeZone, 5 * math.Pi / 8, SideLeft},
		{LayoutThreeZone, math.Pi, SideLeft},
		{LayoutTwoState, math.Nextafter(math.Pi/2, 0), SideRight},
		{LayoutTwoState, math.Pi / 2, SideLeft},
		{LayoutTwoState, math.Pi, SideLeft},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.layout.Classify(config, tt.angle), "%s %g", tt.layout, tt.angle)
	}
}

func TestClassifyOutsidePanics(t *testing.T) {
	config := types.DefaultConfig()
	assert.Panics(t, func() { LayoutThreeZone.Classify(config, -0.01) })
	assert.Panics(t, func() { LayoutTwoState.Classify(config, math.Pi+0.01) })
}

func TestPairLinkedAngles(t *testing.T) {
	p := newPair(t, LayoutThreeZone, true)
	for _, a := range []float64{-0.1, -0.5, -math.Pi / 4, 0} {
		p.SetAngle(a)
		assert.Equal(t, a, p.TopAngle())
		assert.Equal(t, -a, p.BottomAngle(), "下刀应为上刀的相反数")

		n := 0
		id := p.Angle.LazyLink(func(float64, float64) { n++ })
		p.SetBottomAngle(-a)
		assert.Equal(t, a, p.TopAngle(), "回写下刀角度不应漂移")
		assert.Equal(t, 0, n, "回写相同角度不应通知")
		p.Angle.Unlink(id)
	}
}

func TestPairSetAngleIdempotent(t *testing.T) {
	p := newPair(t, LayoutThreeZone, false)
	angles, conns := 0, 0
	p.Angle.LazyLink(func(float64, float64) { angles++ })
	p.Connection.LazyLink(func(types.Connection, types.Connection) { conns++ })

	p.SetAngle(p.TopAngle())
	assert.Equal(t, 0, angles)
	assert.Equal(t, 0, conns)

	p.Drag(-0.2)
	p.Drag(-0.2)
	assert.Equal(t, 1, angles)
	assert.Equal(t, 1, conns, "拖动只进入一次拖动中状态")
}

func TestPairDragClamps(t *testing.T) {
	p := newPair(t, LayoutThreeZone, false)
	assert.InDelta(t, -math.Pi/4, p.MinAngle(), 1e-12)
	assert.InDelta(t, 0, p.MaxAngle(), 1e-12)

	p.Drag(-10)
	assert.InDelta(t, -math.Pi/4, p.TopAngle(), 1e-12)
	p.Drag(10)
	assert.InDelta(t, 0, p.TopAngle(), 1e-12)
	assert.Equal(t, types.ConnectionSwitchInTransit, p.Connection.Get())
	assert.True(t, p.IsDragging())
}

func TestPairReleaseSnaps(t *testing.T) {
	tests := []struct {
		name     string
		layout   Layout
		withBulb bool
		drag     float64 // 相对角度
		want     types.Connection
	}{
		{"靠近电池", LayoutThreeZone, false, -0.1, types.ConnectionBatteryConnected},
		{"进入断开区", LayoutThreeZone, false, -math.Pi/4 + 0.05, types.ConnectionOpenCircuit},
		{"灯泡电路断开区", LayoutThreeZone, true, -3*math.Pi/8 + 0.01, types.ConnectionOpenCircuit},
		{"进入灯泡区", LayoutThreeZone, true, -math.Pi/2 + 0.1, types.ConnectionLightBulbConnected},
		{"越过灯泡", LayoutThreeZone, true, -5, types.ConnectionLightBulbConnected},
		{"两态偏右", LayoutTwoState, true, -math.Pi/4 - 0.01, types.ConnectionLightBulbConnected},
		{"两态分界左侧", LayoutTwoState, false, -math.Pi/4 + 0.01, types.ConnectionBatteryConnected},
		{"两态偏左", LayoutTwoState, false, -0.2, types.ConnectionBatteryConnected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPair(t, tt.layout, tt.withBulb)
			p.StartDrag()
			assert.Equal(t, types.ConnectionSwitchInTransit, p.Connection.Get())
			p.Drag(tt.drag)
			got := p.Release()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, p.Connection.Get())
			assert.False(t, p.IsDragging())
			// 松开后角度吸附到连接点
			for _, pt := range p.Points() {
				if pt.Connection == tt.want {
					assert.InDelta(t, pt.Angle, p.AbsoluteAngle(), 1e-12)
				}
			}
		})
	}
}

func TestPairReleaseWithoutDrag(t *testing.T) {
	p := newPair(t, LayoutThreeZone, false)
	n := 0
	p.Connection.LazyLink(func(types.Connection, types.Connection) { n++ })
	assert.Equal(t, types.ConnectionBatteryConnected, p.Release())
	assert.Equal(t, 0, n)
}

func TestPairDragTo(t *testing.T) {
	p := newPair(t, LayoutThreeZone, true)
	a := 2.0
	p.DragTo(r3.Add(p.TopHinge, r3.Vec{X: math.Cos(a), Y: math.Sin(a)}))
	assert.InDelta(t, a, p.AbsoluteAngle(), 1e-12)
	assert.InDelta(t, a-3*math.Pi/4, p.TopAngle(), 1e-12)

	end := p.TopEnd()
	assert.InDelta(t, p.TopHinge.X+p.Length*math.Cos(a), end.X, 1e-12)
	bottom := p.BottomEnd()
	assert.InDelta(t, end.X, bottom.X, 1e-12, "下刀与上刀水平镜像")
	assert.InDelta(t, p.BottomHinge.Y-p.Length*math.Sin(a), bottom.Y, 1e-12)

	// 指针在铰点左下方，按最左端处理
	p.DragTo(r3.Add(p.TopHinge, r3.Vec{X: -1, Y: -0.1}))
	assert.InDelta(t, p.MaxAngle(), p.TopAngle(), 1e-12)
	// 右下方按最右端处理
	p.DragTo(r3.Add(p.TopHinge, r3.Vec{X: 1, Y: -0.1}))
	assert.InDelta(t, p.MinAngle(), p.TopAngle(), 1e-12)
	assert.Equal(t, types.ConnectionLightBulbConnected, p.Release())
}

func TestPairSetConnection(t *testing.T) {
	p := newPair(t, LayoutThreeZone, false)
	require.NoError(t, p.SetConnection(types.ConnectionOpenCircuit))
	assert.Equal(t, types.ConnectionOpenCircuit, p.Connection.Get())
	assert.InDelta(t, -math.Pi/4, p.TopAngle(), 1e-12)

	assert.Error(t, p.SetConnection(types.ConnectionLightBulbConnected), "无灯泡电路没有灯泡连接点")

	p.StartDrag()
	require.NoError(t, p.SetConnection(types.ConnectionBatteryConnected))
	assert.False(t, p.IsDragging())

	p.Drag(-0.5)
	p.Reset()
	assert.Equal(t, types.ConnectionBatteryConnected, p.Connection.Get())
	assert.Zero(t, p.TopAngle())
}

func TestNewPairValidation(t *testing.T) {
	config := types.DefaultConfig()
	hinge := r3.Vec{}
	// 两态布局下断开点落在电池分区
	_, err := NewPair(config, LayoutTwoState, DefaultPoints(LayoutThreeZone, false), types.ConnectionBatteryConnected, hinge, hinge)
	assert.Error(t, err)

	_, err = NewPair(config, LayoutThreeZone, DefaultPoints(LayoutThreeZone, false), types.ConnectionLightBulbConnected, hinge, hinge)
	assert.Error(t, err, "初始连接点不存在")

	_, err = NewPair(config, LayoutThreeZone, []ConnectionPoint{{Connection: types.ConnectionBatteryConnected, Angle: 3}}, types.ConnectionBatteryConnected, hinge, hinge)
	assert.Error(t, err, "连接点不足")

	_, err = NewPair(config, LayoutThreeZone, []ConnectionPoint{
		{Connection: types.ConnectionOpenCircuit, Angle: math.Pi / 2},
		{Connection: types.ConnectionBatteryConnected, Angle: 4},
	}, types.ConnectionBatteryConnected, hinge, hinge)
	assert.Error(t, err, "角度越界")

	_, err = NewPair(config, LayoutThreeZone, []ConnectionPoint{
		{Connection: types.ConnectionSwitchInTransit, Angle: math.Pi / 2},
		{Connection: types.ConnectionBatteryConnected, Angle: 3 * math.Pi / 4},
	}, types.ConnectionBatteryConnected, hinge, hinge)
	assert.Error(t, err, "拖动中不能作为连接点")
}
