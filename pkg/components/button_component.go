package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 定义按钮的渲染样式
type ButtonStyle int

const (
	// ButtonStylePrimary 实心圆角按钮（英雄层的 Explore）
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleOutline 描边按钮（Close）
	ButtonStyleOutline
	// ButtonStyleLink 纯文字链接（导航）
	ButtonStyleLink
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：外观、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 尺寸由工厂根据文字宽度和内边距计算
//   - 释放时触发 OnClick
type ButtonComponent struct {
	// Style 渲染样式
	Style ButtonStyle

	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.RGBA
	// HoverColor 悬停时的文字/背景高亮色
	HoverColor color.RGBA
	// Background 背景色（Primary）或描边色（Outline）
	Background color.RGBA

	// ===== 按钮尺寸 =====
	Width  float64
	Height float64

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Hover 悬停高亮进度 [0, 1]，每帧向目标平滑靠近
	Hover float64

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
