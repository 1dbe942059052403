package systems

import (
	"image/color"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体（实心、描边、文字链接）
//
// 职责：
//   - 渲染按钮背景（按 Style 选择矢量图形）
//   - 渲染按钮文字（自动居中）
//   - 按 Hover 进度混合高亮色
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)
	textColor := button.TextColor

	switch button.Style {
	case components.ButtonStylePrimary:
		bg := mixColor(button.Background, button.HoverColor, button.Hover)
		vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	case components.ButtonStyleOutline:
		if button.Hover > 0 {
			fill := button.HoverColor
			fill.A = uint8(float64(fill.A) * button.Hover * 0.35)
			vector.DrawFilledRect(screen, x, y, w, h, fill, true)
		}
		vector.StrokeRect(screen, x, y, w, h, 1.5, button.Background, true)
	case components.ButtonStyleLink:
		textColor = mixColor(button.TextColor, button.HoverColor, button.Hover)
	}

	if button.State == components.UIDisabled {
		textColor.A /= 2
	}
	drawCenteredText(screen, button.Text, button.Font, textColor, pos.X+button.Width/2, pos.Y+button.Height/2)
}

// drawCenteredText 以 (cx, cy) 为中心绘制单行文字
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, clr color.RGBA, cx, cy float64) {
	if str == "" || face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter   // 水平居中
	op.LayoutOptions.SecondaryAlign = text.AlignCenter // 垂直居中
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// mixColor 按 t ∈ [0, 1] 线性混合两个颜色
func mixColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
