package systems

import (
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

// RotationSystem 指针驱动的旋转平滑系统
//
// 每帧对每个同时拥有 RotationComponent 和 MeshComponent 的实体：
//
//	target = (pointerY × Factor, pointerX × Factor)
//	rot   += (target - rot) × Smoothing
//
// 平滑按帧而非按时间计算（固定 60 TPS），deltaTime 不参与。
// 网格尚未挂载的实体本帧跳过。
type RotationSystem struct {
	entityManager *ecs.EntityManager
}

// NewRotationSystem 创建旋转平滑系统
func NewRotationSystem(em *ecs.EntityManager) *RotationSystem {
	return &RotationSystem{entityManager: em}
}

// Update 推进一帧
func (s *RotationSystem) Update(deltaTime float64) {
	ptr := CurrentPointer(s.entityManager)

	for _, id := range ecs.GetEntitiesWith1[*components.RotationComponent](s.entityManager) {
		rot, _ := ecs.GetComponent[*components.RotationComponent](s.entityManager, id)

		if m, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id); !ok || m == nil || m.Mesh == nil {
			continue
		}

		rot.TargetX = ptr.Y * rot.Factor
		rot.TargetY = ptr.X * rot.Factor
		rot.X = utils.Approach(rot.X, rot.TargetX, rot.Smoothing)
		rot.Y = utils.Approach(rot.Y, rot.TargetY, rot.Smoothing)
	}
}
