package systems

import (
	"math"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

// dragRadiansPerPixel 拖拽 1 像素对应的旋转角
const dragRadiansPerPixel = 0.01

// DragRotateSystem 拖拽旋转系统（技术栈螺母的轨道控制，不支持缩放）
// 在网格视口内按下后拖动，改变 FloatComponent 的 DragYaw/DragPitch
type DragRotateSystem struct {
	entityManager *ecs.EntityManager
	input         *utils.InputState
	// topInset 顶部被固定导航栏覆盖的高度，其中的按下不参与命中
	topInset float64

	active       ecs.EntityID
	lastX, lastY int
}

// NewDragRotateSystem 创建拖拽旋转系统
//
// 参数：
//   - topInset: 顶部覆盖层高度（导航栏），为 0 表示整屏可拖拽
func NewDragRotateSystem(em *ecs.EntityManager, input *utils.InputState, topInset float64) *DragRotateSystem {
	return &DragRotateSystem{entityManager: em, input: input, topInset: topInset}
}

// Update 处理拖拽
func (s *DragRotateSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	in := *s.input

	if in.JustPressed {
		s.active = s.hit(float64(in.X), float64(in.Y))
		s.lastX, s.lastY = in.X, in.Y
		return
	}
	if s.active == 0 {
		return
	}
	if !in.Pressed {
		s.active = 0
		return
	}

	fl, ok := ecs.GetComponent[*components.FloatComponent](s.entityManager, s.active)
	if !ok {
		s.active = 0
		return
	}
	fl.DragYaw += float64(in.X-s.lastX) * dragRadiansPerPixel
	fl.DragPitch += float64(in.Y-s.lastY) * dragRadiansPerPixel
	fl.DragPitch = utils.Clamp(fl.DragPitch, -math.Pi/2, math.Pi/2)
	s.lastX, s.lastY = in.X, in.Y
}

// Active 返回正在拖拽的实体，0 表示没有
func (s *DragRotateSystem) Active() ecs.EntityID {
	return s.active
}

// hit 查找包含 (x, y) 的网格视口
// 滚动到导航栏下方的螺母被导航栏遮挡，不可命中
func (s *DragRotateSystem) hit(x, y float64) ecs.EntityID {
	if y < s.topInset {
		return 0
	}
	for _, id := range ecs.GetEntitiesWith2[*components.FloatComponent, *components.MeshComponent](s.entityManager) {
		m, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		vp := m.Viewport
		if utils.PointInRect(x, y, float64(vp.X), float64(vp.Y), float64(vp.Width), float64(vp.Height)) {
			return id
		}
	}
	return 0
}
