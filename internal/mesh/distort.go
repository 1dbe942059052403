package mesh

import "github.com/chewxy/math32"

// Noise 平滑的三维噪声场，取值 [-1, 1]
// 由若干正弦波叠加，随时间 t 连续变化
func Noise(p Vec3, t float32) float32 {
	n := math32.Sin(p.X*2.3+t)*math32.Cos(p.Y*1.9+t*0.8) +
		math32.Sin(p.Z*2.7+t*1.3)
	return n / 2
}

// Distort 计算扭曲后的顶点位置
//
// 每个顶点沿自身方向（从原点出发）缩放：
//
//	p' = p × radius × (1 + distort × Noise(dir(p), time × speed))
//
// distort 为 0 时网格保持原形；dst 长度不足时重新分配。
func Distort(dst []Vec3, m *Mesh, radius, distort, speed, time float32) []Vec3 {
	if cap(dst) < len(m.Vertices) {
		dst = make([]Vec3, len(m.Vertices))
	}
	dst = dst[:len(m.Vertices)]

	t := time * speed
	for i, v := range m.Vertices {
		k := radius
		if distort != 0 {
			k *= 1 + distort*Noise(v.Normalize(), t)
		}
		dst[i] = v.Scale(k)
	}
	return dst
}
