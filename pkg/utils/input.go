// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 统一处理鼠标和触摸输入，场景和系统只读取这个快照
type InputState struct {
	// 指针位置（逻辑屏幕坐标）
	X, Y int
	// HasPointer 指针是否位于窗口内（鼠标悬停或有活动触摸）
	HasPointer bool
	// Pressed 鼠标左键或触摸按住
	Pressed bool
	// JustPressed 本帧刚按下
	JustPressed bool
	// JustReleased 本帧刚释放（释放位置为 X, Y）
	JustReleased bool
	// IsTouch 当前指针来自触摸
	IsTouch bool

	// WheelY 滚轮纵向增量（向上为正）
	WheelY float64

	// 键盘
	Confirm    bool // Enter / Space 刚按下
	ScrollUp   bool // ↑ 按住
	ScrollDown bool // ↓ 按住
	PageUp     bool // PageUp 刚按下
	PageDown   bool // PageDown 刚按下
	Home       bool // Home 刚按下
	End        bool // End 刚按下
}

// InputSource 每帧提供一次输入快照
// 游戏运行时使用 EbitenInput，测试中可替换为固定输入
type InputSource interface {
	Poll() InputState
}

// InputFunc 将函数适配为 InputSource
type InputFunc func() InputState

// Poll 实现 InputSource
func (f InputFunc) Poll() InputState {
	return f()
}

// EbitenInput 从 Ebitengine 读取真实输入
type EbitenInput struct {
	// ScreenWidth/ScreenHeight 逻辑屏幕尺寸，用于判断指针是否在窗口内
	ScreenWidth, ScreenHeight int

	lastTouchX, lastTouchY int
}

// NewEbitenInput 创建输入源
func NewEbitenInput(screenWidth, screenHeight int) *EbitenInput {
	return &EbitenInput{ScreenWidth: screenWidth, ScreenHeight: screenHeight}
}

// Poll 读取本帧输入
// 优先检测触摸（移动设备），其次鼠标（桌面设备）
func (in *EbitenInput) Poll() InputState {
	state := InputState{}

	touchIDs := ebiten.AppendTouchIDs(nil)
	justPressedTouches := inpututil.AppendJustPressedTouchIDs(nil)
	justReleasedTouches := inpututil.AppendJustReleasedTouchIDs(nil)

	switch {
	case len(touchIDs) > 0:
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		in.lastTouchX, in.lastTouchY = state.X, state.Y
		state.IsTouch = true
		state.HasPointer = true
		state.Pressed = true
		state.JustPressed = len(justPressedTouches) > 0
	case len(justReleasedTouches) > 0:
		// 触摸释放时 TouchPosition 已失效，使用最后记录的位置
		state.X, state.Y = in.lastTouchX, in.lastTouchY
		state.IsTouch = true
		state.HasPointer = true
		state.JustReleased = true
	default:
		state.X, state.Y = ebiten.CursorPosition()
		state.HasPointer = in.inside(state.X, state.Y)
		state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}

	_, state.WheelY = ebiten.Wheel()

	state.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	state.ScrollUp = ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	state.ScrollDown = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	state.PageUp = inpututil.IsKeyJustPressed(ebiten.KeyPageUp)
	state.PageDown = inpututil.IsKeyJustPressed(ebiten.KeyPageDown)
	state.Home = inpututil.IsKeyJustPressed(ebiten.KeyHome)
	state.End = inpututil.IsKeyJustPressed(ebiten.KeyEnd)

	return state
}

func (in *EbitenInput) inside(x, y int) bool {
	if in.ScreenWidth <= 0 || in.ScreenHeight <= 0 {
		return true
	}
	return x >= 0 && y >= 0 && x < in.ScreenWidth && y < in.ScreenHeight
}

// NormalizePointer 将屏幕坐标转换为 [-1, 1] 的归一化坐标
//
// x 向右为正，y 向上为正。
// 超出屏幕的坐标被截断到 [-1, 1]。
func NormalizePointer(x, y, width, height int) (nx, ny float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	nx = float64(x)/float64(width)*2 - 1
	ny = -(float64(y)/float64(height)*2 - 1)
	return Clamp(nx, -1, 1), Clamp(ny, -1, 1)
}

// PointInRect 判断点是否在矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
