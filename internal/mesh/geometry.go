package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Face 三角面（顶点索引，逆时针为外侧）
type Face [3]int

// Mesh 以原点为中心的凸多面体
type Mesh struct {
	Vertices []Vec3
	Faces    []Face
}

// Kind 网格类型名称（与 config.MeshKind 的取值一致）
const (
	KindIcosphere = "icosphere"
	KindBox       = "box"
	KindHexPrism  = "hexprism"
)

// New 按类型名称创建网格
func New(kind string, detail int) (*Mesh, error) {
	switch kind {
	case KindIcosphere:
		return Icosphere(detail), nil
	case KindBox:
		return Box(), nil
	case KindHexPrism:
		return HexPrism(), nil
	default:
		return nil, fmt.Errorf("unknown mesh kind %q", kind)
	}
}

// Icosphere 细分二十面体，顶点位于单位球面上
// detail 为细分次数（0 为二十面体本身），每次细分面数乘 4
func Icosphere(detail int) *Mesh {
	t := (1 + math32.Sqrt(5)) / 2

	m := &Mesh{
		Vertices: []Vec3{
			{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
			{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
			{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
		},
		Faces: []Face{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	}
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Normalize()
	}

	for i := 0; i < detail; i++ {
		m = subdivide(m)
	}
	m.orientFaces()
	return m
}

// subdivide 每个三角面拆成 4 个，新顶点投影回单位球面
func subdivide(m *Mesh) *Mesh {
	out := &Mesh{Vertices: append([]Vec3(nil), m.Vertices...)}
	midpoints := make(map[[2]int]int)

	mid := func(a, b int) int {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if idx, ok := midpoints[key]; ok {
			return idx
		}
		p := m.Vertices[a].Add(m.Vertices[b]).Scale(0.5).Normalize()
		out.Vertices = append(out.Vertices, p)
		idx := len(out.Vertices) - 1
		midpoints[key] = idx
		return idx
	}

	out.Faces = make([]Face, 0, len(m.Faces)*4)
	for _, f := range m.Faces {
		ab := mid(f[0], f[1])
		bc := mid(f[1], f[2])
		ca := mid(f[2], f[0])
		out.Faces = append(out.Faces,
			Face{f[0], ab, ca},
			Face{f[1], bc, ab},
			Face{f[2], ca, bc},
			Face{ab, bc, ca},
		)
	}
	return out
}

// Box 边长为 2 的立方体（顶点在 ±1）
func Box() *Mesh {
	m := &Mesh{
		Vertices: []Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		Faces: []Face{
			{4, 5, 6}, {4, 6, 7}, // front
			{1, 0, 3}, {1, 3, 2}, // back
			{0, 4, 7}, {0, 7, 3}, // left
			{5, 1, 2}, {5, 2, 6}, // right
			{3, 7, 6}, {3, 6, 2}, // top
			{0, 1, 5}, {0, 5, 4}, // bottom
		},
	}
	m.orientFaces()
	return m
}

// hexSegments 六棱柱的边数
const hexSegments = 6

// HexPrismHalfDepth 六棱柱正面所在的 z
const HexPrismHalfDepth = 0.5

// HexPrism 半径 1、高 1 的六棱柱，轴沿 Z（正面朝向相机，形似螺母）
func HexPrism() *Mesh {
	m := &Mesh{}
	const halfDepth = HexPrismHalfDepth

	// 0..5 前环，6..11 后环，12 前心，13 后心
	for _, z := range []float32{halfDepth, -halfDepth} {
		for i := 0; i < hexSegments; i++ {
			a := float32(i)*2*math32.Pi/hexSegments + math32.Pi/2
			s, c := math32.Sincos(a)
			m.Vertices = append(m.Vertices, Vec3{c, s, z})
		}
	}
	front := len(m.Vertices)
	m.Vertices = append(m.Vertices, Vec3{0, 0, halfDepth}, Vec3{0, 0, -halfDepth})
	back := front + 1

	for i := 0; i < hexSegments; i++ {
		j := (i + 1) % hexSegments
		m.Faces = append(m.Faces,
			Face{front, i, j},
			Face{back, hexSegments + j, hexSegments + i},
			Face{i, hexSegments + i, hexSegments + j},
			Face{i, hexSegments + j, j},
		)
	}
	m.orientFaces()
	return m
}

// orientFaces 统一面的绕序，使法线朝外
// 所有网格都是以原点为中心的凸体，面重心方向即外侧方向
func (m *Mesh) orientFaces() {
	for i, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c)
		if n.Dot(centroid) < 0 {
			m.Faces[i] = Face{f[0], f[2], f[1]}
		}
	}
}

// FaceNormal 计算三角面法线（单位向量）
func FaceNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
