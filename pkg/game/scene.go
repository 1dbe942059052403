package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (e.g., the hero overlay or the portfolio).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Mounter 是一个可选接口，场景成为活动场景时被调用
type Mounter interface {
	Mount()
}

// Unmounter 是一个可选接口，场景被替换时被调用
//
// 场景应在此释放实体和缓冲区；卸载后的场景不会再收到 Update/Draw。
type Unmounter interface {
	Unmount()
}
