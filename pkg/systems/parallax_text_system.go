package systems

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ParallaxTextSystem 视差文字系统
// 文字向指针的反方向偏移，偏移量与旋转使用相同的平滑系数
type ParallaxTextSystem struct {
	entityManager *ecs.EntityManager
	// parallax 指针位于边缘时的最大偏移（像素）
	parallax  float64
	smoothing float64
}

// NewParallaxTextSystem 创建视差文字系统
func NewParallaxTextSystem(em *ecs.EntityManager, parallax, smoothing float64) *ParallaxTextSystem {
	return &ParallaxTextSystem{
		entityManager: em,
		parallax:      parallax,
		smoothing:     smoothing,
	}
}

// Update 更新文字偏移
func (s *ParallaxTextSystem) Update(deltaTime float64) {
	ptr := CurrentPointer(s.entityManager)

	for _, id := range ecs.GetEntitiesWith1[*components.ParallaxTextComponent](s.entityManager) {
		pt, _ := ecs.GetComponent[*components.ParallaxTextComponent](s.entityManager, id)

		// 指针 y 向上为正，屏幕 y 向下为正
		targetX := -ptr.X * s.parallax * pt.Depth
		targetY := ptr.Y * s.parallax * pt.Depth
		pt.OffsetX = utils.Approach(pt.OffsetX, targetX, s.smoothing)
		pt.OffsetY = utils.Approach(pt.OffsetY, targetY, s.smoothing)
	}
}

// Draw 绘制所有视差文字
func (s *ParallaxTextSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ParallaxTextComponent](s.entityManager) {
		pt, _ := ecs.GetComponent[*components.ParallaxTextComponent](s.entityManager, id)
		if pt.Font == nil || pt.Text == "" {
			continue
		}

		op := &text.DrawOptions{}
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
		op.LayoutOptions.SecondaryAlign = text.AlignCenter
		op.GeoM.Translate(pt.BaseX+pt.OffsetX, pt.BaseY+pt.OffsetY)
		op.ColorScale.ScaleWithColor(pt.Color)
		text.Draw(screen, pt.Text, pt.Font, op)
	}
}
