package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
//
// 旧场景实现 Unmounter 时先卸载，新场景实现 Mounter 时再挂载。
// 切换到当前场景本身不做任何事。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == sm.currentScene {
		return
	}

	if u, ok := sm.currentScene.(Unmounter); ok {
		u.Unmount()
	}
	log.Printf("[SceneManager] %s -> %s", sceneName(sm.currentScene), sceneName(scene))
	sm.currentScene = scene
	if m, ok := scene.(Mounter); ok {
		m.Mount()
	}
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

func sceneName(s Scene) string {
	if s == nil {
		return "<none>"
	}
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
