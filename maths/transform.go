package maths

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform 模型/视图坐标变换
// 斜投影: z 轴按 pitch 缩短、按 yaw 旋转后叠加到 xy 平面，再统一缩放.
// 视图层只关心 2D 坐标，模型坐标单位为米.
type Transform struct {
	Scale  float64 // 视图单位/米
	Pitch  float64 // 俯仰角(rad)
	Yaw    float64 // 偏航角(rad)
	Offset r2.Vec  // 视图原点偏移

	proj *mat.Dense // 2x3 投影矩阵
}

// NewTransform 创建变换
func NewTransform(scale, pitch, yaw float64) *Transform {
	zx := math.Sin(pitch) * math.Cos(yaw)
	zy := math.Sin(pitch) * math.Sin(yaw)
	proj := mat.NewDense(2, 3, []float64{
		1, 0, zx,
		0, 1, zy,
	})
	proj.Scale(scale, proj)
	return &Transform{Scale: scale, Pitch: pitch, Yaw: yaw, proj: proj}
}

// ModelToViewDelta 模型增量转换为视图增量
func (t *Transform) ModelToViewDelta(d r3.Vec) r2.Vec {
	var out mat.VecDense
	out.MulVec(t.proj, mat.NewVecDense(3, []float64{d.X, d.Y, d.Z}))
	return r2.Vec{X: out.AtVec(0), Y: out.AtVec(1)}
}

// ModelToView 模型坐标转换为视图坐标
func (t *Transform) ModelToView(p r3.Vec) r2.Vec {
	return r2.Add(t.ModelToViewDelta(p), t.Offset)
}

// ViewToModelDelta 视图增量转换为 z=0 平面上的模型增量
func (t *Transform) ViewToModelDelta(d r2.Vec) r3.Vec {
	return r3.Vec{X: d.X / t.Scale, Y: d.Y / t.Scale}
}

// ViewToModel 视图坐标转换为 z=0 平面上的模型坐标
func (t *Transform) ViewToModel(p r2.Vec) r3.Vec {
	return t.ViewToModelDelta(r2.Sub(p, t.Offset))
}

// ModelToViewBox 模型盒投影后的视图包围矩形
func (t *Transform) ModelToViewBox(b Box) r2.Box {
	vs := b.Vertices()
	first := t.ModelToView(vs[0])
	out := r2.Box{Min: first, Max: first}
	for _, v := range vs[1:] {
		p := t.ModelToView(v)
		out.Min.X = math.Min(out.Min.X, p.X)
		out.Min.Y = math.Min(out.Min.Y, p.Y)
		out.Max.X = math.Max(out.Max.X, p.X)
		out.Max.Y = math.Max(out.Max.Y, p.Y)
	}
	return out
}
