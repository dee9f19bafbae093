package maths

import "gonum.org/v1/gonum/spatial/r3"

// Box 模型空间轴对齐盒，用于极板、端子和探针的相交判断
type Box struct {
	Min r3.Vec // 最小角
	Max r3.Vec // 最大角
}

// NewBox 以中心和尺寸创建盒
func NewBox(center, size r3.Vec) Box {
	half := r3.Scale(0.5, size)
	return Box{Min: r3.Sub(center, half), Max: r3.Add(center, half)}
}

// PointBox 以点为中心的立方体
func PointBox(center r3.Vec, edge float64) Box {
	return NewBox(center, r3.Vec{X: edge, Y: edge, Z: edge})
}

// Center 中心点
func (b Box) Center() r3.Vec { return r3.Scale(0.5, r3.Add(b.Min, b.Max)) }

// Size 尺寸
func (b Box) Size() r3.Vec { return r3.Sub(b.Max, b.Min) }

// Contains 点是否在盒内(含边界)
func (b Box) Contains(p r3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Intersects 两盒是否相交(接触也算相交)
func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// Translate 平移
func (b Box) Translate(d r3.Vec) Box {
	return Box{Min: r3.Add(b.Min, d), Max: r3.Add(b.Max, d)}
}

// Vertices 八个顶点
func (b Box) Vertices() [8]r3.Vec {
	var v [8]r3.Vec
	for i := range v {
		p := b.Min
		if i&1 != 0 {
			p.X = b.Max.X
		}
		if i&2 != 0 {
			p.Y = b.Max.Y
		}
		if i&4 != 0 {
			p.Z = b.Max.Z
		}
		v[i] = p
	}
	return v
}
