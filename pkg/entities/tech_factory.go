package entities

import (
	"github.com/decker502/folio/internal/mesh"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// 技术栈螺母参数
const (
	techFloatSpeed        = 1.75
	techRotationIntensity = 1.0
	techFloatIntensity    = 2.0
	techMeshScale         = 2.4
	techCameraDistance    = 5.0
	techCameraFOV         = 75.0
	// techDecalHalf 图标贴花半边长，角点仍落在正六边形内切圆内
	techDecalHalf = 0.55
	// techDecalLift 贴花略高于正面，避免与正面三角形重合
	techDecalLift = 0.01
)

// techGeometry 所有螺母共享同一份几何体
var techGeometry = mesh.HexPrism()

// TechLighting 螺母灯光：弱环境光 + 正前方平行光
func TechLighting() mesh.Lighting {
	return mesh.Lighting{
		AmbientColor:         mesh.RGB{1, 1, 1},
		AmbientIntensity:     0.25,
		DirectionalPosition:  mesh.V3(0, 0, 0.05),
		DirectionalColor:     mesh.RGB{1, 1, 1},
		DirectionalIntensity: 1,
	}
}

// NewTechNut 创建技术栈螺母实体
//
// 参数：
//   - index: 序号，用于错开漂浮相位
//   - tech: 技术条目（颜色）
//   - viewport: 单元格在屏幕上的位置，滚动时由场景更新
//   - icon: 印在螺母正面的图标，nil 时只绘制螺母
func NewTechNut(em *ecs.EntityManager, index int, tech config.Technology, viewport mesh.Viewport, icon *ebiten.Image) ecs.EntityID {
	entity := em.CreateEntity()
	m := &components.MeshComponent{
		Mesh:     techGeometry,
		Camera:   mesh.Camera{Distance: techCameraDistance, FOV: techCameraFOV},
		Viewport: viewport,
		Scale:    techMeshScale,
	}
	if icon != nil {
		m.Decal = icon
		m.DecalHalf = techDecalHalf
		m.DecalDepth = mesh.HexPrismHalfDepth + techDecalLift
	}
	ecs.AddComponent(em, entity, m)
	ecs.AddComponent(em, entity, &components.MaterialComponent{
		Color:  ToRGB(tech.Color),
		Radius: 1,
	})
	ecs.AddComponent(em, entity, &components.FloatComponent{
		Speed:             techFloatSpeed,
		RotationIntensity: techRotationIntensity,
		FloatIntensity:    techFloatIntensity,
		Phase:             float64(index) * 1.3,
	})
	ecs.AddComponent(em, entity, &components.LightingComponent{Lighting: TechLighting()})
	return entity
}
