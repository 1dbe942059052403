package components

// FloatComponent 漂浮动画（技术栈螺母）
//
// 曲线：
//
//	t' = (Time + Phase) / 4 × Speed
//	RotX = cos(t') / 8 × RotationIntensity
//	RotY = sin(t') / 8 × RotationIntensity
//	OffsetY = sin(t') / 10 × FloatIntensity
type FloatComponent struct {
	Speed             float64
	RotationIntensity float64
	FloatIntensity    float64
	// Phase 初始相位，避免多个螺母同步摆动
	Phase float64
	Time  float64

	RotX, RotY float64
	OffsetY    float64

	// DragYaw/DragPitch 用户拖拽叠加的旋转（不可缩放的轨道控制）
	DragYaw, DragPitch float64
}
