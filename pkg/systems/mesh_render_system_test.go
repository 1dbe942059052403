package systems

import (
	"testing"

	"github.com/decker502/folio/internal/mesh"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

func newMeshEntity(em *ecs.EntityManager) (ecs.EntityID, *components.MeshComponent, *components.MaterialComponent) {
	id := em.CreateEntity()
	m := &components.MeshComponent{
		Mesh:     mesh.Icosphere(2),
		Camera:   mesh.Camera{Distance: 7, FOV: 50},
		Viewport: mesh.Viewport{Width: 800, Height: 600},
		Scale:    2,
		Spin:     0.5,
	}
	mat := &components.MaterialComponent{
		Color:   mesh.RGB{0.57, 0.37, 1},
		Speed:   0.5,
		Distort: 0.3,
		Radius:  1,
	}
	em.AddComponent(id, m)
	em.AddComponent(id, mat)
	return id, m, mat
}

func TestMeshRenderSystemUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	_, m, mat := newMeshEntity(em)

	sys := NewMeshRenderSystem(em, mesh.Lighting{})
	for i := 0; i < 60; i++ {
		sys.Update(1.0 / 60)
	}
	if mat.Time < 0.999 || mat.Time > 1.001 {
		t.Errorf("material time = %v, want 1", mat.Time)
	}
	if m.SpinAngle < 0.499 || m.SpinAngle > 0.501 {
		t.Errorf("spin angle = %v, want 0.5", m.SpinAngle)
	}
}

// TestMeshRenderSystemTriangles 三角形位于视口内并按深度排序
func TestMeshRenderSystemTriangles(t *testing.T) {
	em := ecs.NewEntityManager()
	id, m, _ := newMeshEntity(em)
	em.AddComponent(id, &components.RotationComponent{X: 0.1, Y: -0.2})

	sys := NewMeshRenderSystem(em, mesh.Lighting{AmbientColor: mesh.RGB{1, 1, 1}, AmbientIntensity: 0.5})
	tris := sys.Triangles(id)
	if len(tris) == 0 || len(tris) >= len(m.Mesh.Faces) {
		t.Fatalf("visible triangles = %d of %d", len(tris), len(m.Mesh.Faces))
	}
	for _, tri := range tris {
		for k := 0; k < 3; k++ {
			if tri.X[k] < 0 || tri.X[k] > 800 || tri.Y[k] < 0 || tri.Y[k] > 600 {
				t.Fatalf("vertex outside viewport: (%v, %v)", tri.X[k], tri.Y[k])
			}
		}
	}
	for i := 1; i < len(tris); i++ {
		if tris[i].Depth > tris[i-1].Depth {
			t.Fatal("triangles not sorted far to near")
		}
	}
}

func TestMeshRenderSystemMissingMaterial(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &components.MeshComponent{Mesh: mesh.Box()})

	sys := NewMeshRenderSystem(em, mesh.Lighting{})
	if tris := sys.Triangles(id); tris != nil {
		t.Errorf("triangles without material = %d, want nil", len(tris))
	}
}

// TestMeshRenderSystemLightingOverride 实体灯光覆盖默认灯光
func TestMeshRenderSystemLightingOverride(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _, mat := newMeshEntity(em)
	mat.Distort = 0
	mat.Color = mesh.RGB{1, 1, 1}

	sys := NewMeshRenderSystem(em, mesh.Lighting{})
	dark := sys.Triangles(id)
	if dark[0].Color != (mesh.RGB{}) {
		t.Errorf("no lights should render black, got %v", dark[0].Color)
	}

	em.AddComponent(id, &components.LightingComponent{
		Lighting: mesh.Lighting{AmbientColor: mesh.RGB{1, 1, 1}, AmbientIntensity: 0.25},
	})
	lit := sys.Triangles(id)
	if lit[0].Color != (mesh.RGB{0.25, 0.25, 0.25}) {
		t.Errorf("ambient 0.25 = %v", lit[0].Color)
	}
}

// TestMeshRenderSystemReusesBuffers 连续帧复用顶点缓冲区
func TestMeshRenderSystemReusesBuffers(t *testing.T) {
	em := ecs.NewEntityManager()
	id, m, _ := newMeshEntity(em)
	sys := NewMeshRenderSystem(em, mesh.Lighting{})

	sys.Triangles(id)
	if len(m.World) != len(m.Mesh.Vertices) {
		t.Fatalf("World len = %d, want %d", len(m.World), len(m.Mesh.Vertices))
	}
	world, positions := &m.World[0], &m.Positions[0]

	sys.Update(1.0 / 60)
	sys.Triangles(id)
	if &m.World[0] != world || &m.Positions[0] != positions {
		t.Error("vertex buffers reallocated between frames")
	}
}

// TestMeshRenderSystemDecal 贴花只在正面朝向相机时可见
func TestMeshRenderSystemDecal(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	m := &components.MeshComponent{
		Mesh:       mesh.HexPrism(),
		Camera:     mesh.Camera{Distance: 5, FOV: 75},
		Viewport:   mesh.Viewport{X: 40, Y: 40, Width: 112, Height: 112},
		Scale:      1,
		DecalHalf:  0.55,
		DecalDepth: mesh.HexPrismHalfDepth,
	}
	em.AddComponent(id, m)
	em.AddComponent(id, &components.MaterialComponent{Color: mesh.RGB{0.75, 0.75, 0.75}, Radius: 1})
	fl := &components.FloatComponent{}
	em.AddComponent(id, fl)

	sys := NewMeshRenderSystem(em, mesh.Lighting{AmbientColor: mesh.RGB{1, 1, 1}, AmbientIntensity: 1})
	if _, ok := sys.Decal(id); ok {
		t.Fatal("mesh without a decal image should have no decal")
	}

	m.Decal = ebiten.NewImage(16, 16)
	q, ok := sys.Decal(id)
	if !ok {
		t.Fatal("front-facing decal should be visible")
	}
	// 视口中心在 (96, 96)
	cx := (q.X[0] + q.X[2]) / 2
	cy := (q.Y[0] + q.Y[2]) / 2
	if cx < 95 || cx > 97 || cy < 95 || cy > 97 {
		t.Errorf("decal center = (%v, %v), want viewport center (96, 96)", cx, cy)
	}

	// 拖拽到背面后贴花隐藏
	fl.DragYaw = 3.1
	if _, ok := sys.Decal(id); ok {
		t.Error("decal facing away from the camera should be hidden")
	}

	fl.DragYaw = 0
	sys.Draw(ebiten.NewImage(200, 200))
}
