package entities

import (
	"bytes"
	"math"
	"testing"

	"github.com/decker502/folio/internal/mesh"
	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func TestNewButton(t *testing.T) {
	em := ecs.NewEntityManager()
	face := testFace(t, 18)
	clicked := false

	id := NewButton(em, 10, 20, ButtonSpec{Label: "Explore", Font: face, Style: components.ButtonStylePrimary}, func() { clicked = true })

	btn, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 10 || pos.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", pos.X, pos.Y)
	}

	tw, _ := text.Measure("Explore", face, 0)
	if btn.Width != tw+2*config.ButtonPaddingX {
		t.Errorf("width = %v, want %v", btn.Width, tw+2*config.ButtonPaddingX)
	}
	if !btn.Enabled || btn.Background != config.ColorAccent {
		t.Errorf("unexpected button %+v", btn)
	}

	btn.OnClick()
	if !clicked {
		t.Error("OnClick not wired")
	}
}

// TestMeasureButtonLinkPadding 文字链接使用较小的内边距
func TestMeasureButtonLinkPadding(t *testing.T) {
	face := testFace(t, 16)
	pw, _ := MeasureButton(ButtonSpec{Label: "Work", Font: face, Style: components.ButtonStylePrimary})
	lw, _ := MeasureButton(ButtonSpec{Label: "Work", Font: face, Style: components.ButtonStyleLink})
	if lw >= pw {
		t.Errorf("link width %v should be smaller than primary %v", lw, pw)
	}

	w, h := MeasureButton(ButtonSpec{Label: "x"})
	if w != 2*config.ButtonPaddingX || h != 2*config.ButtonPaddingY {
		t.Errorf("nil font size = (%v, %v)", w, h)
	}
}

// TestHeroMeshAttachedLater 网格挂载前实体只有旋转和材质
func TestHeroMeshAttachedLater(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()

	id := NewHeroMesh(em, cfg)
	if !ecs.HasComponent[*components.RotationComponent](em, id) {
		t.Fatal("rotation component missing")
	}
	if ecs.HasComponent[*components.MeshComponent](em, id) {
		t.Fatal("mesh should not be attached yet")
	}

	if err := AttachHeroMesh(em, id, cfg, 1280, 720, false); err != nil {
		t.Fatalf("AttachHeroMesh() error: %v", err)
	}
	m, ok := ecs.GetComponent[*components.MeshComponent](em, id)
	if !ok {
		t.Fatal("mesh not attached")
	}
	if len(m.Mesh.Faces) != 1280 {
		t.Errorf("faces = %d, want 1280 for detail 3", len(m.Mesh.Faces))
	}
	if m.Scale != cfg.EffectiveScale(false) {
		t.Errorf("scale = %v, want %v", m.Scale, cfg.EffectiveScale(false))
	}

	rot, _ := ecs.GetComponent[*components.RotationComponent](em, id)
	if rot.Factor != 0.15 || rot.Smoothing != 0.05 {
		t.Errorf("rotation params = %+v", rot)
	}
}

func TestAttachHeroMeshUnknownKind(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()
	cfg.Mesh.Kind = "teapot"

	id := NewHeroMesh(em, cfg)
	if err := AttachHeroMesh(em, id, cfg, 100, 100, false); err == nil {
		t.Error("expected error for unknown mesh kind")
	}
}

func TestLightingFromConfig(t *testing.T) {
	l := LightingFromConfig(config.DefaultSceneConfig().Lights)
	if l.AmbientIntensity != 0.5 || l.HemisphereIntensity != 0.15 {
		t.Errorf("intensities = %v, %v", l.AmbientIntensity, l.HemisphereIntensity)
	}
	if l.DirectionalPosition != mesh.V3(-20, 50, 10) {
		t.Errorf("directional position = %v", l.DirectionalPosition)
	}
	if l.GroundColor != (mesh.RGB{}) || l.SkyColor != (mesh.RGB{1, 1, 1}) {
		t.Errorf("hemisphere colors = %v / %v", l.SkyColor, l.GroundColor)
	}
}

func TestToRGB(t *testing.T) {
	if c := ToRGB("#ff0000"); c != (mesh.RGB{1, 0, 0}) {
		t.Errorf("ToRGB(#ff0000) = %v", c)
	}
	if c := ToRGB("bogus"); c != (mesh.RGB{1, 1, 1}) {
		t.Errorf("invalid color should fall back to white, got %v", c)
	}
}

func TestNewTechNut(t *testing.T) {
	em := ecs.NewEntityManager()
	vp := mesh.Viewport{X: 40, Y: 300, Width: config.TechCellSize, Height: config.TechCellSize}
	id := NewTechNut(em, 2, config.Technology{Name: "PLC", Color: "#bfbfbf"}, vp, nil)

	fl, ok := ecs.GetComponent[*components.FloatComponent](em, id)
	if !ok || fl.Speed != 1.75 || fl.FloatIntensity != 2 {
		t.Fatalf("float component = %+v", fl)
	}
	m, _ := ecs.GetComponent[*components.MeshComponent](em, id)
	if m.Viewport != vp || len(m.Mesh.Faces) != 24 {
		t.Errorf("mesh = %+v", m)
	}
	if !ecs.HasComponent[*components.LightingComponent](em, id) {
		t.Error("tech nut should carry its own lighting")
	}
	if m.Decal != nil || m.DecalHalf != 0 {
		t.Errorf("nut without icon should have no decal: %+v", m)
	}
}

// TestNewTechNutDecal 图标贴在螺母正面之上
func TestNewTechNutDecal(t *testing.T) {
	em := ecs.NewEntityManager()
	icon := ebiten.NewImage(8, 8)
	id := NewTechNut(em, 0, config.Technology{Name: "PLC", Icon: "plc", Color: "#bfbfbf"}, mesh.Viewport{}, icon)

	m, _ := ecs.GetComponent[*components.MeshComponent](em, id)
	if m.Decal != icon {
		t.Fatal("decal image not attached")
	}
	if m.DecalDepth <= mesh.HexPrismHalfDepth {
		t.Errorf("DecalDepth = %v, should sit in front of the face at %v", m.DecalDepth, mesh.HexPrismHalfDepth)
	}
	// 贴花角点必须落在六边形正面内（内切圆半径 √3/2）
	if corner := m.DecalHalf * math.Sqrt2; corner >= math.Sqrt(3)/2 {
		t.Errorf("decal corner at %v leaves the hexagon face", corner)
	}
}
