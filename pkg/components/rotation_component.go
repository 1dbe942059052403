package components

// RotationComponent 指针驱动的平滑旋转
//
// 每帧：Target = (pointerY × Factor, pointerX × Factor)，
// 当前角度向 Target 移动剩余距离的 Smoothing 比例。
// X 为绕 X 轴的角度（弧度），Y 为绕 Y 轴的角度。
type RotationComponent struct {
	X, Y             float64
	TargetX, TargetY float64

	Factor    float64
	Smoothing float64
}

// PointerComponent 本帧的归一化指针（x 向右、y 向上，[-1, 1]）
// 由 PointerSystem 写入单例实体
type PointerComponent struct {
	X, Y float64
	// Active 指针是否位于窗口内
	Active bool
}
