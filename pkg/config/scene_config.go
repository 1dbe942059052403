package config

import (
	"fmt"

	"github.com/decker502/folio/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultSceneConfigPath 嵌入的英雄场景配置
const DefaultSceneConfigPath = "data/scene.yaml"

// SceneConfig 英雄场景配置
//
// 包含旋转平滑、材质、网格、相机、灯光和 UI 文本。
// 所有字段都有默认值（DefaultSceneConfig），YAML 中缺省的字段保持默认值。
//
// 配置文件位置: data/scene.yaml
type SceneConfig struct {
	// Rotation 指针驱动的旋转平滑参数
	Rotation RotationConfig `yaml:"rotation"`
	// Material 扭曲材质参数
	Material MaterialConfig `yaml:"material"`
	// Mesh 网格几何参数
	Mesh MeshConfig `yaml:"mesh"`
	// Camera 透视相机
	Camera CameraConfig `yaml:"camera"`
	// Lights 灯光
	Lights LightsConfig `yaml:"lights"`
	// Title 视差标题
	Title TitleConfig `yaml:"title"`
	// Controls 关闭英雄层的 UI 控件
	Controls ControlsConfig `yaml:"controls"`
	// Background 背景色
	Background string `yaml:"background"`
}

// RotationConfig 旋转平滑配置
type RotationConfig struct {
	// PointerFactor 指针坐标到目标角度的比例 k（弧度）
	// 目标 = (pointerY × k, pointerX × k)
	PointerFactor float64 `yaml:"pointerFactor"`
	// Smoothing 每帧向目标移动剩余距离的比例，取值 (0, 1]
	Smoothing float64 `yaml:"smoothing"`
}

// MaterialConfig 扭曲材质配置
type MaterialConfig struct {
	// Color 基础颜色 (#RRGGBB)
	Color string `yaml:"color"`
	// Speed 扭曲动画速度（噪声时间缩放）
	Speed float64 `yaml:"speed"`
	// Distort 扭曲强度 [0, 1]，按半径比例位移顶点
	Distort float64 `yaml:"distort"`
	// Radius 基础半径
	Radius float64 `yaml:"radius"`
	// FlatShading 是否使用平面着色（按面法线）
	FlatShading bool `yaml:"flatShading"`
}

// MeshKind 网格类型
type MeshKind string

const (
	// MeshIcosphere 细分二十面体（默认，适合扭曲效果）
	MeshIcosphere MeshKind = "icosphere"
	// MeshBox 立方体（早期占位版本的英雄网格）
	MeshBox MeshKind = "box"
	// MeshHexPrism 六棱柱（技术栈区块的"螺母"）
	MeshHexPrism MeshKind = "hexprism"
)

// MeshConfig 网格配置
type MeshConfig struct {
	// Kind 网格类型
	Kind MeshKind `yaml:"kind"`
	// Detail 细分级别（仅 icosphere），0 ~ 4
	Detail int `yaml:"detail"`
	// Scale 整体缩放；0 视为 1，移动端再乘以 0.7/0.75
	Scale float64 `yaml:"scale"`
	// Spin 绕 Y 轴自转速度（弧度/秒），叠加在指针旋转之上
	Spin float64 `yaml:"spin"`
}

// CameraConfig 透视相机配置
type CameraConfig struct {
	// Distance 相机到原点的距离
	Distance float64 `yaml:"distance"`
	// FOV 垂直视场角（度）
	FOV float64 `yaml:"fov"`
}

// LightsConfig 灯光配置
type LightsConfig struct {
	Ambient     AmbientLight     `yaml:"ambient"`
	Hemisphere  HemisphereLight  `yaml:"hemisphere"`
	Directional DirectionalLight `yaml:"directional"`
	Point       PointLight       `yaml:"point"`
}

// AmbientLight 环境光
type AmbientLight struct {
	Intensity float64 `yaml:"intensity"`
	Color     string  `yaml:"color"`
}

// HemisphereLight 半球光（天空色与地面色按法线 Y 分量混合）
type HemisphereLight struct {
	Intensity   float64 `yaml:"intensity"`
	SkyColor    string  `yaml:"skyColor"`
	GroundColor string  `yaml:"groundColor"`
}

// DirectionalLight 平行光（Position 为光源方向上的一点，指向原点）
type DirectionalLight struct {
	Intensity float64    `yaml:"intensity"`
	Color     string     `yaml:"color"`
	Position  [3]float64 `yaml:"position"`
}

// PointLight 点光源
type PointLight struct {
	Intensity float64    `yaml:"intensity"`
	Color     string     `yaml:"color"`
	Position  [3]float64 `yaml:"position"`
	// Distance 衰减距离，0 表示不衰减
	Distance float64 `yaml:"distance"`
}

// TitleConfig 视差标题配置
type TitleConfig struct {
	Text     string `yaml:"text"`
	Subtitle string `yaml:"subtitle"`
	Color    string `yaml:"color"`
	// Parallax 指针位于边缘时标题的最大偏移（像素）
	Parallax float64 `yaml:"parallax"`
}

// ControlsConfig 英雄层控件配置
type ControlsConfig struct {
	// ExploreLabel 主按钮文字
	ExploreLabel string `yaml:"exploreLabel"`
	// CloseLabel 左上角关闭按钮文字，为空则不显示
	CloseLabel string `yaml:"closeLabel"`
	// ShowNavLinks 是否在英雄层显示导航链接
	ShowNavLinks bool `yaml:"showNavLinks"`
	// KeyboardDismiss 是否允许 Enter/Space 关闭
	KeyboardDismiss bool `yaml:"keyboardDismiss"`
}

// DefaultSceneConfig 返回默认英雄场景配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Rotation: RotationConfig{
			PointerFactor: 0.15,
			Smoothing:     0.05,
		},
		Material: MaterialConfig{
			Color:   "#915EFF",
			Speed:   0.5,
			Distort: 0.3,
			Radius:  1,
		},
		Mesh: MeshConfig{
			Kind:   MeshIcosphere,
			Detail: 3,
			Scale:  2,
			Spin:   0.15,
		},
		Camera: CameraConfig{
			Distance: 7,
			FOV:      50,
		},
		Lights: LightsConfig{
			Ambient: AmbientLight{Intensity: 0.5, Color: "#ffffff"},
			Hemisphere: HemisphereLight{
				Intensity:   0.15,
				SkyColor:    "#ffffff",
				GroundColor: "#000000",
			},
			Directional: DirectionalLight{
				Intensity: 0.8,
				Color:     "#ffffff",
				Position:  [3]float64{-20, 50, 10},
			},
			Point: PointLight{
				Intensity: 1,
				Color:     "#ffffff",
				Position:  [3]float64{2, 2, 4},
			},
		},
		Title: TitleConfig{
			Text:     "Hi, I'm Rick",
			Subtitle: "Packaging line mechanic & developer",
			Color:    "#ffffff",
			Parallax: 24,
		},
		Controls: ControlsConfig{
			ExploreLabel:    "Explore",
			CloseLabel:      "Close",
			ShowNavLinks:    true,
			KeyboardDismiss: true,
		},
		Background: "#000000",
	}
}

// ParseSceneConfig 解析 YAML 英雄场景配置
// 缺省字段使用 DefaultSceneConfig 的值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// LoadSceneConfig 加载英雄场景配置
//
// 参数:
//   - path: 配置文件路径（如 "data/scene.yaml"），嵌入资源优先
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := ReadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSceneConfig(data)
}

// LoadSceneConfigFile 加载用户指定的场景配置（磁盘优先，见 ReadLocalFile）
func LoadSceneConfigFile(path string) (*SceneConfig, error) {
	data, err := ReadLocalFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSceneConfig(data)
}

// Validate 验证配置有效性
func (c *SceneConfig) Validate() error {
	if c.Rotation.Smoothing <= 0 || c.Rotation.Smoothing > 1 {
		return fmt.Errorf("rotation.smoothing must be in (0, 1], got %v", c.Rotation.Smoothing)
	}
	if c.Rotation.PointerFactor < 0 {
		return fmt.Errorf("rotation.pointerFactor must not be negative, got %v", c.Rotation.PointerFactor)
	}

	if c.Material.Radius <= 0 {
		return fmt.Errorf("material.radius must be positive, got %v", c.Material.Radius)
	}
	if c.Material.Distort < 0 || c.Material.Distort > 1 {
		return fmt.Errorf("material.distort must be in [0, 1], got %v", c.Material.Distort)
	}
	if c.Material.Speed < 0 {
		return fmt.Errorf("material.speed must not be negative, got %v", c.Material.Speed)
	}

	switch c.Mesh.Kind {
	case MeshIcosphere, MeshBox, MeshHexPrism:
	default:
		return fmt.Errorf("mesh.kind %q is not one of icosphere, box, hexprism", c.Mesh.Kind)
	}
	if c.Mesh.Detail < 0 || c.Mesh.Detail > 4 {
		return fmt.Errorf("mesh.detail must be in [0, 4], got %d", c.Mesh.Detail)
	}
	if c.Mesh.Scale < 0 {
		return fmt.Errorf("mesh.scale must not be negative, got %v", c.Mesh.Scale)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	// 扭曲后的最大半径必须在相机前方
	maxExtent := c.Material.Radius * (1 + c.Material.Distort) * c.EffectiveScale(false)
	if c.Camera.Distance <= maxExtent {
		return fmt.Errorf("camera.distance %v must exceed mesh extent %v", c.Camera.Distance, maxExtent)
	}

	for name, intensity := range map[string]float64{
		"ambient":     c.Lights.Ambient.Intensity,
		"hemisphere":  c.Lights.Hemisphere.Intensity,
		"directional": c.Lights.Directional.Intensity,
		"point":       c.Lights.Point.Intensity,
	} {
		if intensity < 0 {
			return fmt.Errorf("lights.%s.intensity must not be negative, got %v", name, intensity)
		}
	}

	for field, value := range map[string]string{
		"material.color":                c.Material.Color,
		"lights.ambient.color":          c.Lights.Ambient.Color,
		"lights.hemisphere.skyColor":    c.Lights.Hemisphere.SkyColor,
		"lights.hemisphere.groundColor": c.Lights.Hemisphere.GroundColor,
		"lights.directional.color":      c.Lights.Directional.Color,
		"lights.point.color":            c.Lights.Point.Color,
		"title.color":                   c.Title.Color,
		"background":                    c.Background,
	} {
		if _, err := utils.ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	if c.Controls.ExploreLabel == "" && c.Controls.CloseLabel == "" && !c.Controls.KeyboardDismiss {
		return fmt.Errorf("controls: at least one dismiss affordance is required")
	}
	return nil
}

// EffectiveScale 返回网格实际缩放
// Scale 为 0 时视为 1；移动端按 0.7/0.75 缩小
func (c *SceneConfig) EffectiveScale(mobile bool) float64 {
	scale := c.Mesh.Scale
	if scale == 0 {
		scale = 1
	}
	if mobile {
		scale *= MobileMeshScale / DesktopMeshScale
	}
	return scale
}
