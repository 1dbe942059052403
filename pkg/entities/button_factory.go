package entities

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonSpec 按钮外观参数
type ButtonSpec struct {
	Label string
	Font  *text.GoTextFace
	Style components.ButtonStyle
}

// MeasureButton 根据文字和样式计算按钮尺寸
// 文字链接使用较小的内边距，便于在导航栏中紧凑排列
func MeasureButton(spec ButtonSpec) (width, height float64) {
	var tw, th float64
	if spec.Font != nil {
		tw, th = text.Measure(spec.Label, spec.Font, 0)
	}

	padX, padY := config.ButtonPaddingX, config.ButtonPaddingY
	if spec.Style == components.ButtonStyleLink {
		padX, padY = 4, 6
	}
	return tw + 2*padX, th + 2*padY
}

// NewButton 创建按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角位置（屏幕坐标）
//   - spec: 文字、字体和样式
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewButton(em *ecs.EntityManager, x, y float64, spec ButtonSpec, onClick func()) ecs.EntityID {
	width, height := MeasureButton(spec)

	btn := &components.ButtonComponent{
		Style:     spec.Style,
		Text:      spec.Label,
		Font:      spec.Font,
		TextColor: config.ColorWhite,
		Width:     width,
		Height:    height,
		State:     components.UINormal,
		Enabled:   true,
		OnClick:   onClick,
	}
	switch spec.Style {
	case components.ButtonStylePrimary:
		btn.Background = config.ColorAccent
		btn.HoverColor = config.ColorTertiary
	case components.ButtonStyleOutline:
		btn.Background = config.ColorWhite
		btn.HoverColor = config.ColorAccent
	case components.ButtonStyleLink:
		btn.TextColor = config.ColorSecondary
		btn.HoverColor = config.ColorWhite
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, btn)
	return entity
}
