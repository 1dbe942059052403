package mesh

// RGB 线性颜色，分量 [0, 1]
type RGB [3]float32

// Mul 分量乘法
func (c RGB) Mul(o RGB) RGB {
	return RGB{c[0] * o[0], c[1] * o[1], c[2] * o[2]}
}

// Scale 数乘
func (c RGB) Scale(s float32) RGB {
	return RGB{c[0] * s, c[1] * s, c[2] * s}
}

// Add 加法
func (c RGB) Add(o RGB) RGB {
	return RGB{c[0] + o[0], c[1] + o[1], c[2] + o[2]}
}

// Clamp 截断到 [0, 1]
func (c RGB) Clamp() RGB {
	for i := range c {
		if c[i] < 0 {
			c[i] = 0
		} else if c[i] > 1 {
			c[i] = 1
		}
	}
	return c
}

// Lighting 场景灯光（均在相机空间中，相机位于 +Z 方向）
type Lighting struct {
	AmbientColor     RGB
	AmbientIntensity float32

	SkyColor            RGB
	GroundColor         RGB
	HemisphereIntensity float32

	// DirectionalPosition 平行光所在位置，光线射向原点
	DirectionalPosition  Vec3
	DirectionalColor     RGB
	DirectionalIntensity float32

	PointPosition  Vec3
	PointColor     RGB
	PointIntensity float32
	// PointDistance 线性衰减距离，0 表示不衰减
	PointDistance float32
}

// Shade 计算一个面的颜色
// base 为材质颜色，center 为面重心，normal 为单位法线
func (l *Lighting) Shade(base RGB, center, normal Vec3) RGB {
	light := l.AmbientColor.Scale(l.AmbientIntensity)

	if l.HemisphereIntensity > 0 {
		w := 0.5*normal.Y + 0.5
		hemi := l.GroundColor.Scale(1 - w).Add(l.SkyColor.Scale(w))
		light = light.Add(hemi.Scale(l.HemisphereIntensity))
	}

	if l.DirectionalIntensity > 0 {
		dir := l.DirectionalPosition.Normalize()
		if d := normal.Dot(dir); d > 0 {
			light = light.Add(l.DirectionalColor.Scale(d * l.DirectionalIntensity))
		}
	}

	if l.PointIntensity > 0 {
		toLight := l.PointPosition.Sub(center)
		dist := toLight.Length()
		if dist > 0 {
			att := float32(1)
			if l.PointDistance > 0 {
				att = 1 - dist/l.PointDistance
			}
			if d := normal.Dot(toLight.Scale(1 / dist)); d > 0 && att > 0 {
				light = light.Add(l.PointColor.Scale(d * att * l.PointIntensity))
			}
		}
	}

	return base.Mul(light).Clamp()
}
