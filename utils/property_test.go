package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPropertyNotify(t *testing.T) {
	p := NewProperty(1.0)
	var calls [][2]float64
	p.LazyLink(func(v, old float64) { calls = append(calls, [2]float64{v, old}) })

	p.Set(2)
	p.Set(2) // 相同值不通知
	p.Set(3)
	assert.Equal(t, [][2]float64{{2, 1}, {3, 2}}, calls)

	p.Reset()
	assert.Equal(t, 1.0, p.Get())
	assert.Len(t, calls, 3)
}

func TestPropertyNaNIsIdempotent(t *testing.T) {
	p := NewProperty(math.NaN())
	n := 0
	p.LazyLink(func(float64, float64) { n++ })
	p.Set(math.NaN())
	assert.Equal(t, 0, n, "NaN 重复设置不应通知")
	p.Set(1)
	p.Set(math.NaN())
	assert.Equal(t, 2, n)
}

func TestPropertyVecWithNaNNotifies(t *testing.T) {
	p := NewProperty(r3.Vec{X: math.NaN(), Y: 1})
	var got []r3.Vec
	p.LazyLink(func(v, _ r3.Vec) { got = append(got, v) })
	p.Set(r3.Vec{X: math.NaN(), Y: 2})
	if assert.Len(t, got, 1, "含 NaN 的不同向量应通知") {
		assert.Equal(t, 2.0, got[0].Y)
	}
	assert.Equal(t, 2.0, p.Get().Y)
}

func TestPropertyLinkOrder(t *testing.T) {
	p := NewProperty("a")
	var order []string
	p.Link(func(v, _ string) { order = append(order, "first:"+v) })
	id := p.LazyLink(func(v, _ string) { order = append(order, "second:"+v) })
	p.Set("b")
	assert.True(t, p.Unlink(id))
	assert.False(t, p.Unlink(id))
	p.Set("c")
	assert.Equal(t, []string{"first:a", "first:b", "second:b", "first:c"}, order)
	assert.Equal(t, 1, p.ListenerCount())
}

func TestPropertyUnlinkDuringNotify(t *testing.T) {
	p := NewProperty(0)
	n := 0
	var id ListenerID
	id = p.LazyLink(func(int, int) { n++; p.Unlink(id) })
	p.LazyLink(func(int, int) { n++ })
	p.Set(1)
	p.Set(2)
	assert.Equal(t, 3, n)
}
