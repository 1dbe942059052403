package components

// ScrollComponent 可滚动区域的纵向偏移
//
// Offset 每帧向 Target 平滑靠近；Target 始终被限制在 [0, Max]。
type ScrollComponent struct {
	Offset float64
	Target float64
	// Max 最大偏移（内容高度 - 视口高度，不小于 0）
	Max float64
	// Smoothing 每帧移动剩余距离的比例
	Smoothing float64

	// 拖拽状态（触摸或鼠标按住拖动）
	Dragging   bool
	DragStartY int
	DragOrigin float64
}
