package systems

import (
	"image"
	"image/color"

	"github.com/decker502/folio/internal/mesh"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// MeshRenderSystem 三维网格渲染系统
//
// 职责：
//   - 推进材质动画时间和自转角（Update）
//   - 扭曲、旋转、投影、着色、排序后通过 DrawTriangles 绘制（Draw）
//
// 实体的旋转由 RotationComponent（指针）、FloatComponent（漂浮）和自转叠加得到。
type MeshRenderSystem struct {
	entityManager *ecs.EntityManager
	// defaultLighting 实体没有 LightingComponent 时使用
	defaultLighting mesh.Lighting

	vertices []ebiten.Vertex
	indices  []uint16
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// white 返回 1×1 白色源图像（取 3×3 图像中心，避免边缘采样）
func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// NewMeshRenderSystem 创建网格渲染系统
func NewMeshRenderSystem(em *ecs.EntityManager, lighting mesh.Lighting) *MeshRenderSystem {
	return &MeshRenderSystem{
		entityManager:   em,
		defaultLighting: lighting,
	}
}

// Update 推进材质时间和自转
func (s *MeshRenderSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.MeshComponent](s.entityManager) {
		m, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		m.SpinAngle += m.Spin * deltaTime

		if mat, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id); ok {
			mat.Time += deltaTime
		}
	}
}

// Draw 绘制所有网格，有贴花的网格随后绘制正面贴花
func (s *MeshRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.MeshComponent, *components.MaterialComponent](s.entityManager) {
		tris := s.Triangles(id)
		if len(tris) == 0 {
			continue
		}
		s.vertices, s.indices = mesh.AppendVertices(s.vertices[:0], s.indices[:0], tris, 1, 1)
		screen.DrawTriangles(s.vertices, s.indices, white(), &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
		s.drawDecal(screen, id)
	}
}

// drawDecal 正面朝向相机时把贴花投影到正面
func (s *MeshRenderSystem) drawDecal(screen *ebiten.Image, id ecs.EntityID) {
	q, ok := s.Decal(id)
	if !ok {
		return
	}
	m, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
	b := m.Decal.Bounds()
	s.vertices, s.indices = mesh.AppendQuad(s.vertices[:0], s.indices[:0], q, float32(b.Dx()), float32(b.Dy()))
	screen.DrawTriangles(s.vertices, s.indices, m.Decal, &ebiten.DrawTrianglesOptions{
		Filter:    ebiten.FilterLinear,
		AntiAlias: true,
	})
}

// Decal 计算实体贴花本帧的屏幕四边形
// 没有贴花或贴花背向相机时 ok 为 false
func (s *MeshRenderSystem) Decal(id ecs.EntityID) (mesh.Quad, bool) {
	m, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
	if !ok || m.Decal == nil || m.DecalHalf <= 0 {
		return mesh.Quad{}, false
	}
	tr := s.transform(id, m)
	return mesh.ProjectDecal(float32(m.DecalHalf), float32(m.DecalDepth), tr, m.Camera, m.Viewport, s.lighting(id))
}

// Triangles 计算实体本帧的屏幕三角形（远到近）
// 缺少网格或材质时返回 nil
func (s *MeshRenderSystem) Triangles(id ecs.EntityID) []mesh.Triangle {
	m, ok := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
	if !ok || m.Mesh == nil {
		return nil
	}
	mat, ok := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id)
	if !ok {
		return nil
	}

	m.Positions = mesh.Distort(m.Positions, m.Mesh,
		float32(mat.Radius), float32(mat.Distort), float32(mat.Speed), float32(mat.Time))
	m.World = mesh.TransformAll(m.World, m.Positions, s.transform(id, m))
	m.Triangles = mesh.Rasterize(m.Triangles, m.Mesh, m.World, m.Camera, m.Viewport, s.lighting(id), mat.Color)
	return m.Triangles
}

// transform 叠加自转、指针旋转、漂浮和拖拽
func (s *MeshRenderSystem) transform(id ecs.EntityID, m *components.MeshComponent) mesh.Transform {
	tr := mesh.Transform{
		Scale: float32(m.Scale),
		RotY:  float32(m.SpinAngle),
	}
	if rot, ok := ecs.GetComponent[*components.RotationComponent](s.entityManager, id); ok {
		tr.RotX += float32(rot.X)
		tr.RotY += float32(rot.Y)
	}
	if fl, ok := ecs.GetComponent[*components.FloatComponent](s.entityManager, id); ok {
		tr.RotX += float32(fl.RotX + fl.DragPitch)
		tr.RotY += float32(fl.RotY + fl.DragYaw)
		tr.Offset.Y = float32(fl.OffsetY)
	}
	return tr
}

func (s *MeshRenderSystem) lighting(id ecs.EntityID) *mesh.Lighting {
	if lc, ok := ecs.GetComponent[*components.LightingComponent](s.entityManager, id); ok {
		return &lc.Lighting
	}
	return &s.defaultLighting
}
