package systems

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、按下、释放等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测释放（在按钮内释放时触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//   - 平滑推进悬停高亮进度 Hover
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	input         *utils.InputState
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager, input *utils.InputState) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		input:         input,
	}
}

// Update 更新按钮交互状态
func (s *ButtonSystem) Update(deltaTime float64) {
	var in utils.InputState
	if s.input != nil {
		in = *s.input
	}

	// 回调可能销毁按钮或整个场景，先收集再触发
	var clicked []func()

	for _, entityID := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			button.Hover = utils.Approach(button.Hover, 0, config.ButtonHoverSmoothing)
			continue
		}

		isHovered := in.HasPointer &&
			utils.PointInRect(float64(in.X), float64(in.Y), pos.X, pos.Y, button.Width, button.Height)

		switch {
		case isHovered && in.JustReleased:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.State = components.UIHovered
		case isHovered && in.Pressed:
			button.State = components.UIClicked
		case isHovered:
			button.State = components.UIHovered
		default:
			button.State = components.UINormal
		}

		target := 0.0
		if button.State == components.UIHovered || button.State == components.UIClicked {
			target = 1
		}
		button.Hover = utils.Approach(button.Hover, target, config.ButtonHoverSmoothing)
	}

	for _, fn := range clicked {
		fn()
	}
}
