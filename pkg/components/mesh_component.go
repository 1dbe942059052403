package components

import (
	"github.com/decker502/folio/internal/mesh"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeshComponent 可渲染的三维网格
//
// Positions/World/Triangles 是渲染系统复用的缓冲区，避免每帧分配。
type MeshComponent struct {
	Mesh *mesh.Mesh
	// Camera 与 Viewport 决定网格投影到屏幕的位置
	Camera   mesh.Camera
	Viewport mesh.Viewport

	// Scale 整体缩放
	Scale float64
	// Spin 绕 Y 轴自转速度（弧度/秒）
	Spin float64
	// SpinAngle 累计自转角
	SpinAngle float64

	// Decal 贴在正面的图标，nil 表示没有
	Decal *ebiten.Image
	// DecalHalf 贴花半边长，DecalDepth 贴花所在平面的 z（模型空间）
	DecalHalf  float64
	DecalDepth float64

	Positions []mesh.Vec3
	World     []mesh.Vec3
	Triangles []mesh.Triangle
}

// MaterialComponent 扭曲材质
type MaterialComponent struct {
	Color   mesh.RGB
	Speed   float64
	Distort float64
	Radius  float64
	// Time 材质动画时间（秒）
	Time float64
}

// LightingComponent 网格使用的灯光
type LightingComponent struct {
	Lighting mesh.Lighting
}
