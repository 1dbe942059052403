package components

// PositionComponent 实体在屏幕上的位置（左上角，像素）
type PositionComponent struct {
	X, Y float64
}
