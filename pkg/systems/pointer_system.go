package systems

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

// PointerSystem 指针采样系统
// 每帧把输入快照中的指针位置归一化后写入单例 PointerComponent
//
// 指针不在窗口内（鼠标移出、没有活动触摸）时写入 (0, 0)，
// 旋转会随之平滑回到静止姿态。
type PointerSystem struct {
	entityManager *ecs.EntityManager
	input         *utils.InputState
	width, height int
	pointerEntity ecs.EntityID
}

// NewPointerSystem 创建指针采样系统
// input 由场景在每帧开始时刷新
func NewPointerSystem(em *ecs.EntityManager, input *utils.InputState, width, height int) *PointerSystem {
	return &PointerSystem{
		entityManager: em,
		input:         input,
		width:         width,
		height:        height,
	}
}

// Update 采样本帧指针
func (s *PointerSystem) Update(deltaTime float64) {
	ptr := s.pointer()

	if s.input == nil || !s.input.HasPointer {
		ptr.X, ptr.Y, ptr.Active = 0, 0, false
		return
	}
	ptr.X, ptr.Y = utils.NormalizePointer(s.input.X, s.input.Y, s.width, s.height)
	ptr.Active = true
}

// pointer 返回单例指针组件，不存在时创建
func (s *PointerSystem) pointer() *components.PointerComponent {
	if s.pointerEntity != 0 {
		if ptr, ok := ecs.GetComponent[*components.PointerComponent](s.entityManager, s.pointerEntity); ok {
			return ptr
		}
	}
	s.pointerEntity = s.entityManager.CreateEntity()
	ptr := &components.PointerComponent{}
	s.entityManager.AddComponent(s.pointerEntity, ptr)
	return ptr
}

// CurrentPointer 读取单例指针；尚未采样时返回零值
func CurrentPointer(em *ecs.EntityManager) components.PointerComponent {
	ids := ecs.GetEntitiesWith1[*components.PointerComponent](em)
	if len(ids) == 0 {
		return components.PointerComponent{}
	}
	ptr, _ := ecs.GetComponent[*components.PointerComponent](em, ids[0])
	return *ptr
}
