package systems

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

// ScrollSystem 滚动系统
//
// 职责：
//   - 滚轮、方向键、PageUp/PageDown、Home/End、拖拽改变滚动目标
//   - 目标被限制在 [0, Max]
//   - 偏移每帧向目标平滑靠近
type ScrollSystem struct {
	entityManager *ecs.EntityManager
	input         *utils.InputState
	// pageHeight 翻页距离（视口高度减去导航栏）
	pageHeight float64
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager, input *utils.InputState, pageHeight float64) *ScrollSystem {
	return &ScrollSystem{
		entityManager: em,
		input:         input,
		pageHeight:    pageHeight,
	}
}

// Update 处理滚动输入并推进平滑
func (s *ScrollSystem) Update(deltaTime float64) {
	var in utils.InputState
	if s.input != nil {
		in = *s.input
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ScrollComponent](s.entityManager) {
		sc, _ := ecs.GetComponent[*components.ScrollComponent](s.entityManager, id)
		s.applyInput(sc, in)

		sc.Target = utils.Clamp(sc.Target, 0, sc.Max)
		if sc.Dragging {
			// 拖拽时直接跟手
			sc.Offset = sc.Target
		} else {
			sc.Offset = utils.Approach(sc.Offset, sc.Target, sc.Smoothing)
		}
	}
}

func (s *ScrollSystem) applyInput(sc *components.ScrollComponent, in utils.InputState) {
	// 滚轮向上为正，内容向下滚动
	sc.Target -= in.WheelY * config.ScrollWheelStep

	if in.ScrollUp {
		sc.Target -= config.ScrollKeyStep
	}
	if in.ScrollDown {
		sc.Target += config.ScrollKeyStep
	}
	if in.PageUp {
		sc.Target -= s.pageHeight
	}
	if in.PageDown {
		sc.Target += s.pageHeight
	}
	if in.Home {
		sc.Target = 0
	}
	if in.End {
		sc.Target = sc.Max
	}

	// 只有触摸支持拖拽滚动，鼠标按住用于点击按钮和旋转螺母
	switch {
	case in.IsTouch && in.JustPressed:
		sc.Dragging = true
		sc.DragStartY = in.Y
		sc.DragOrigin = sc.Offset
	case sc.Dragging && in.Pressed:
		sc.Target = sc.DragOrigin - float64(in.Y-sc.DragStartY)
	case sc.Dragging:
		sc.Dragging = false
	}
}

// ScrollTo 设置滚动目标（导航跳转），超出范围时被截断
func ScrollTo(sc *components.ScrollComponent, target float64) {
	sc.Target = utils.Clamp(target, 0, sc.Max)
}
