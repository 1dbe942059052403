package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/folio/internal/mesh"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ToRGB 将 #RRGGBB 转换为线性颜色，无法解析时返回白色
func ToRGB(hex string) mesh.RGB {
	c := utils.MustParseHexColor(hex, color.RGBA{0xff, 0xff, 0xff, 0xff})
	return mesh.RGB{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// LightingFromConfig 将场景灯光配置转换为网格灯光
func LightingFromConfig(l config.LightsConfig) mesh.Lighting {
	toVec := func(p [3]float64) mesh.Vec3 {
		return mesh.V3(float32(p[0]), float32(p[1]), float32(p[2]))
	}
	return mesh.Lighting{
		AmbientColor:     ToRGB(l.Ambient.Color),
		AmbientIntensity: float32(l.Ambient.Intensity),

		SkyColor:            ToRGB(l.Hemisphere.SkyColor),
		GroundColor:         ToRGB(l.Hemisphere.GroundColor),
		HemisphereIntensity: float32(l.Hemisphere.Intensity),

		DirectionalPosition:  toVec(l.Directional.Position),
		DirectionalColor:     ToRGB(l.Directional.Color),
		DirectionalIntensity: float32(l.Directional.Intensity),

		PointPosition:  toVec(l.Point.Position),
		PointColor:     ToRGB(l.Point.Color),
		PointIntensity: float32(l.Point.Intensity),
		PointDistance:  float32(l.Point.Distance),
	}
}

// NewHeroMesh 创建英雄层的扭曲网格实体
//
// 实体先获得旋转组件，网格在 AttachHeroMesh 中挂载；
// 在此之前旋转系统会跳过该实体。
func NewHeroMesh(em *ecs.EntityManager, cfg *config.SceneConfig) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.RotationComponent{
		Factor:    cfg.Rotation.PointerFactor,
		Smoothing: cfg.Rotation.Smoothing,
	})
	ecs.AddComponent(em, entity, &components.MaterialComponent{
		Color:   ToRGB(cfg.Material.Color),
		Speed:   cfg.Material.Speed,
		Distort: cfg.Material.Distort,
		Radius:  cfg.Material.Radius,
	})
	return entity
}

// AttachHeroMesh 生成几何体并挂载到实体
//
// 参数：
//   - width, height: 视口尺寸（全屏）
//   - mobile: 移动端使用较小的缩放
func AttachHeroMesh(em *ecs.EntityManager, entity ecs.EntityID, cfg *config.SceneConfig, width, height int, mobile bool) error {
	geometry, err := mesh.New(string(cfg.Mesh.Kind), cfg.Mesh.Detail)
	if err != nil {
		return fmt.Errorf("failed to build hero mesh: %w", err)
	}

	ecs.AddComponent(em, entity, &components.MeshComponent{
		Mesh: geometry,
		Camera: mesh.Camera{
			Distance: float32(cfg.Camera.Distance),
			FOV:      float32(cfg.Camera.FOV),
		},
		Viewport: mesh.Viewport{Width: float32(width), Height: float32(height)},
		Scale:    cfg.EffectiveScale(mobile),
		Spin:     cfg.Mesh.Spin,
	})
	return nil
}

// NewParallaxText 创建视差文字实体（文字中心位于 x, y）
func NewParallaxText(em *ecs.EntityManager, str string, face *text.GoTextFace, clr color.RGBA, x, y, depth float64) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ParallaxTextComponent{
		Text:  str,
		Font:  face,
		Color: clr,
		BaseX: x,
		BaseY: y,
		Depth: depth,
	})
	return entity
}
