package mesh

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// MaxVertices DrawTriangles 单次调用可寻址的顶点上限（uint16 索引）
const MaxVertices = 65535

// nearPlane 相机空间中最近可见深度
const nearPlane = 0.1

// Camera 位于 (0, 0, Distance)、朝向 -Z 的透视相机
type Camera struct {
	Distance float32
	// FOV 垂直视场角（度）
	FOV float32
}

// Viewport 投影目标区域（屏幕像素）
type Viewport struct {
	X, Y, Width, Height float32
}

// Project 将世界坐标投影到视口
// ok 为 false 表示点位于近平面之后
func (c Camera) Project(p Vec3, vp Viewport) (sx, sy, depth float32, ok bool) {
	depth = c.Distance - p.Z
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	focal := (vp.Height / 2) / math32.Tan(c.FOV*math32.Pi/360)
	sx = vp.X + vp.Width/2 + p.X*focal/depth
	sy = vp.Y + vp.Height/2 - p.Y*focal/depth
	return sx, sy, depth, true
}

// Transform 网格的模型变换：缩放、旋转、平移
type Transform struct {
	Scale  float32
	RotX   float32
	RotY   float32
	Offset Vec3
}

// Apply 变换一个点
func (t Transform) Apply(p Vec3) Vec3 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return p.Scale(s).Rotate(t.RotX, t.RotY).Add(t.Offset)
}

// Triangle 已投影、已着色的屏幕三角形
type Triangle struct {
	X, Y  [3]float32
	Depth float32
	Color RGB
}

// TransformAll 对所有顶点应用模型变换，结果写入 dst（容量足够时复用）
func TransformAll(dst []Vec3, positions []Vec3, tr Transform) []Vec3 {
	if cap(dst) < len(positions) {
		dst = make([]Vec3, len(positions))
	}
	dst = dst[:len(positions)]
	for i, p := range positions {
		dst[i] = tr.Apply(p)
	}
	return dst
}

// Rasterize 剔除、投影、着色并按深度排序（远到近）
//
// world 为已变换到世界空间的顶点（与 m.Vertices 一一对应，见 TransformAll）；
// 背向相机的面和穿过近平面的面被丢弃。
func Rasterize(dst []Triangle, m *Mesh, world []Vec3, cam Camera, vp Viewport, light *Lighting, base RGB) []Triangle {
	dst = dst[:0]
	eye := Vec3{0, 0, cam.Distance}

	for _, f := range m.Faces {
		a, b, c := world[f[0]], world[f[1]], world[f[2]]
		center := a.Add(b).Add(c).Scale(1.0 / 3)
		normal := FaceNormal(a, b, c)

		// 背面剔除
		if normal.Dot(eye.Sub(center)) <= 0 {
			continue
		}

		var tri Triangle
		visible := true
		for k, p := range [3]Vec3{a, b, c} {
			sx, sy, _, ok := cam.Project(p, vp)
			if !ok {
				visible = false
				break
			}
			tri.X[k], tri.Y[k] = sx, sy
		}
		if !visible {
			continue
		}

		tri.Depth = cam.Distance - center.Z
		tri.Color = light.Shade(base, center, normal)
		dst = append(dst, tri)
	}

	slices.SortStableFunc(dst, func(x, y Triangle) int {
		switch {
		case x.Depth > y.Depth:
			return -1
		case x.Depth < y.Depth:
			return 1
		default:
			return 0
		}
	})
	return dst
}

// AppendVertices 将三角形追加为 DrawTriangles 的顶点和索引
//
// srcX/srcY 为白色源图像中的采样点，颜色通过顶点颜色缩放得到。
// 顶点数超过 MaxVertices 后剩余的三角形被丢弃。
func AppendVertices(vs []ebiten.Vertex, is []uint16, tris []Triangle, srcX, srcY float32) ([]ebiten.Vertex, []uint16) {
	for _, t := range tris {
		base := len(vs)
		if base+3 > MaxVertices {
			break
		}
		for k := 0; k < 3; k++ {
			vs = append(vs, ebiten.Vertex{
				DstX:   t.X[k],
				DstY:   t.Y[k],
				SrcX:   srcX,
				SrcY:   srcY,
				ColorR: t.Color[0],
				ColorG: t.Color[1],
				ColorB: t.Color[2],
				ColorA: 1,
			})
		}
		is = append(is, uint16(base), uint16(base+1), uint16(base+2))
	}
	return vs, is
}

// Quad 投影后的贴花四边形，顶点依次为左上、右上、右下、左下
type Quad struct {
	X, Y [4]float32
	// Shade 贴花所在平面的光照
	Shade RGB
}

// ProjectDecal 投影模型空间 z=depth 平面上、半边长为 half 的正方形贴花
//
// 贴花随模型一起变换；背向相机或有顶点位于近平面之后时 ok 为 false。
func ProjectDecal(half, depth float32, tr Transform, cam Camera, vp Viewport, light *Lighting) (q Quad, ok bool) {
	corners := [4]Vec3{{-half, half, depth}, {half, half, depth}, {half, -half, depth}, {-half, -half, depth}}

	center := tr.Apply(Vec3{0, 0, depth})
	normal := Vec3{0, 0, 1}.Rotate(tr.RotX, tr.RotY)
	if normal.Dot(Vec3{0, 0, cam.Distance}.Sub(center)) <= 0 {
		return q, false
	}

	for i, c := range corners {
		sx, sy, _, visible := cam.Project(tr.Apply(c), vp)
		if !visible {
			return q, false
		}
		q.X[i], q.Y[i] = sx, sy
	}
	q.Shade = light.Shade(RGB{1, 1, 1}, center, normal)
	return q, true
}

// AppendQuad 将贴花追加为 DrawTriangles 的顶点和索引，源图像尺寸为 srcW×srcH
func AppendQuad(vs []ebiten.Vertex, is []uint16, q Quad, srcW, srcH float32) ([]ebiten.Vertex, []uint16) {
	base := len(vs)
	if base+4 > MaxVertices {
		return vs, is
	}
	srcX := [4]float32{0, srcW, srcW, 0}
	srcY := [4]float32{0, 0, srcH, srcH}
	for k := 0; k < 4; k++ {
		vs = append(vs, ebiten.Vertex{
			DstX:   q.X[k],
			DstY:   q.Y[k],
			SrcX:   srcX[k],
			SrcY:   srcY[k],
			ColorR: q.Shade[0],
			ColorG: q.Shade[1],
			ColorB: q.Shade[2],
			ColorA: 1,
		})
	}
	b := uint16(base)
	is = append(is, b, b+1, b+2, b, b+2, b+3)
	return vs, is
}
