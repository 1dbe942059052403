// Package main provides a mesh viewer tool for tuning the hero material and
// the tech nut geometry without going through the portfolio app.
//
// Usage:
//
//	go run ./cmd/mesh_viewer [flags]
//
// Flags:
//
//	--kind <name>       Start with a mesh kind (icosphere, box, hexprism)
//	--detail <n>        Icosphere subdivision level (0-4)
//	--scene <path>      Scene config to start from (default data/scene.yaml)
//
// Controls:
//
//	Mouse move         - Pointer-driven rotation (same smoothing as the hero)
//	Left/Right Arrow   - Switch mesh kind
//	Up/Down Arrow      - Increase/decrease subdivision
//	[ / ]              - Decrease/increase distort by 0.05
//	P                  - Toggle pause (freeze the noise animation)
//	Q/Escape           - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/entities"
	"github.com/decker502/folio/pkg/systems"
	"github.com/decker502/folio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 960
	screenHeight = 720
)

var (
	kindFlag    = flag.String("kind", "", "Initial mesh kind (icosphere, box, hexprism)")
	detailFlag  = flag.Int("detail", -1, "Icosphere subdivision level (0-4)")
	sceneFlag   = flag.String("scene", "data/scene.yaml", "Scene config file")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

var meshKinds = []config.MeshKind{config.MeshIcosphere, config.MeshBox, config.MeshHexPrism}

// MeshViewerGame implements ebiten.Game interface for the mesh viewer
type MeshViewerGame struct {
	cfg    *config.SceneConfig
	input  utils.InputState
	source utils.InputSource

	entityManager    *ecs.EntityManager
	pointerSystem    *systems.PointerSystem
	rotationSystem   *systems.RotationSystem
	meshRenderSystem *systems.MeshRenderSystem
	meshEntity       ecs.EntityID

	kindIndex int
	paused    bool

	// UI state
	statusMessage string
}

// NewMeshViewerGame creates a new mesh viewer instance
func NewMeshViewerGame(cfg *config.SceneConfig) (*MeshViewerGame, error) {
	g := &MeshViewerGame{
		cfg:           cfg,
		source:        utils.NewEbitenInput(screenWidth, screenHeight),
		entityManager: ecs.NewEntityManager(),
	}
	for i, k := range meshKinds {
		if k == cfg.Mesh.Kind {
			g.kindIndex = i
		}
	}

	g.pointerSystem = systems.NewPointerSystem(g.entityManager, &g.input, screenWidth, screenHeight)
	g.rotationSystem = systems.NewRotationSystem(g.entityManager)
	g.meshRenderSystem = systems.NewMeshRenderSystem(g.entityManager, entities.LightingFromConfig(cfg.Lights))

	if err := g.rebuild(); err != nil {
		return nil, err
	}
	return g, nil
}

// rebuild recreates the mesh entity from the current config
func (g *MeshViewerGame) rebuild() error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}
	if g.meshEntity != 0 {
		g.entityManager.DestroyEntity(g.meshEntity)
		g.entityManager.RemoveMarkedEntities()
	}
	g.meshEntity = entities.NewHeroMesh(g.entityManager, g.cfg)
	if err := entities.AttachHeroMesh(g.entityManager, g.meshEntity, g.cfg, screenWidth, screenHeight, false); err != nil {
		return err
	}

	m, _ := ecs.GetComponent[*components.MeshComponent](g.entityManager, g.meshEntity)
	g.statusMessage = fmt.Sprintf("%s detail=%d  %d vertices / %d faces  distort=%.2f",
		g.cfg.Mesh.Kind, g.cfg.Mesh.Detail, len(m.Mesh.Vertices), len(m.Mesh.Faces), g.cfg.Material.Distort)
	log.Printf("[MeshViewer] %s", g.statusMessage)
	return nil
}

// Update handles keys and advances the systems
func (g *MeshViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	changed := false
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.kindIndex = (g.kindIndex + 1) % len(meshKinds)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.kindIndex = (g.kindIndex + len(meshKinds) - 1) % len(meshKinds)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyUp) && g.cfg.Mesh.Detail < 4:
		g.cfg.Mesh.Detail++
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.cfg.Mesh.Detail > 0:
		g.cfg.Mesh.Detail--
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.cfg.Material.Distort = utils.Clamp(g.cfg.Material.Distort-0.05, 0, 1)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.cfg.Material.Distort = utils.Clamp(g.cfg.Material.Distort+0.05, 0, 1)
		changed = true
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.paused = !g.paused
	}
	if changed {
		g.cfg.Mesh.Kind = meshKinds[g.kindIndex]
		if err := g.rebuild(); err != nil {
			g.statusMessage = err.Error()
		}
	}

	deltaTime := 1.0 / config.TicksPerSecond
	g.input = g.source.Poll()
	g.pointerSystem.Update(deltaTime)
	g.rotationSystem.Update(deltaTime)
	if !g.paused {
		g.meshRenderSystem.Update(deltaTime)
	}
	return nil
}

// Draw renders the mesh and the status line
func (g *MeshViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(utils.MustParseHexColor(g.cfg.Background, config.ColorHeroOverlay))
	g.meshRenderSystem.Draw(screen)

	status := g.statusMessage
	if g.paused {
		status += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, status+"\n←/→ kind  ↑/↓ detail  [/] distort  P pause  Q quit")
}

// Layout returns the logical screen size
func (g *MeshViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadSceneConfig(*sceneFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene config: %v\n", err)
		os.Exit(1)
	}
	if *kindFlag != "" {
		cfg.Mesh.Kind = config.MeshKind(*kindFlag)
	}
	if *detailFlag >= 0 {
		cfg.Mesh.Detail = *detailFlag
	}

	g, err := NewMeshViewerGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("folio - Mesh Viewer")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Viewer error: %v\n", err)
		os.Exit(1)
	}
}
