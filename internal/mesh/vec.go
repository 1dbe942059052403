// Package mesh 提供英雄场景和技术栈区块所需的最小三维管线
//
// 只包含固定功能：生成几何体、顶点扭曲、旋转、透视投影、
// 平面着色和画家算法排序，最终输出 ebiten.DrawTriangles 所需的顶点和索引。
// 所有计算使用 float32（github.com/chewxy/math32）。
package mesh

import "github.com/chewxy/math32"

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z float32
}

// V3 创建向量
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add 向量加法
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub 向量减法
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale 数乘
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot 点积
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross 叉积
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length 向量长度
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize 返回单位向量；零向量原样返回
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// RotateX 绕 X 轴旋转（弧度）
func (v Vec3) RotateX(a float32) Vec3 {
	s, c := math32.Sincos(a)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY 绕 Y 轴旋转（弧度）
func (v Vec3) RotateY(a float32) Vec3 {
	s, c := math32.Sincos(a)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// Rotate 按 XYZ 欧拉顺序应用旋转（先 Y 后 X，Z 恒为 0）
func (v Vec3) Rotate(rx, ry float32) Vec3 {
	return v.RotateY(ry).RotateX(rx)
}
