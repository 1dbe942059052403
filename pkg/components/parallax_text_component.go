package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ParallaxTextComponent 随指针反向偏移的文字（英雄层标题）
type ParallaxTextComponent struct {
	Text  string
	Font  *text.GoTextFace
	Color color.RGBA

	// BaseX/BaseY 文字中心的静止位置
	BaseX, BaseY float64
	// Depth 偏移系数，与 SceneConfig.Title.Parallax 相乘得到最大偏移像素
	Depth float64

	OffsetX, OffsetY float64
}
