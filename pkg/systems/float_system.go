package systems

import (
	"math"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
)

// FloatSystem 漂浮动画系统（技术栈螺母的轻微摆动和上下浮动）
type FloatSystem struct {
	entityManager *ecs.EntityManager
}

// NewFloatSystem 创建漂浮动画系统
func NewFloatSystem(em *ecs.EntityManager) *FloatSystem {
	return &FloatSystem{entityManager: em}
}

// Update 推进漂浮时间并更新姿态
func (s *FloatSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FloatComponent](s.entityManager) {
		fl, _ := ecs.GetComponent[*components.FloatComponent](s.entityManager, id)
		fl.Time += deltaTime

		t := (fl.Time + fl.Phase) / 4 * fl.Speed
		fl.RotX = math.Cos(t) / 8 * fl.RotationIntensity
		fl.RotY = math.Sin(t) / 8 * fl.RotationIntensity
		fl.OffsetY = math.Sin(t) / 10 * fl.FloatIntensity
	}
}
