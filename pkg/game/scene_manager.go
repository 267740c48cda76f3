package game

import (
	"log"

	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
)

// SceneManager dispatches update, draw and input to the scene registered for the current page.
//
// 绘制顺序：背景图层 -> 当前页面 -> 覆盖图层（HUD）
type SceneManager struct {
	state      *GameState
	scenes     map[Page]Scene
	background Layer
	overlay    Layer
}

// NewSceneManager creates a manager bound to the shared game state.
// No scene is registered initially; pages without a scene simply draw nothing.
func NewSceneManager(state *GameState) *SceneManager {
	return &SceneManager{
		state:  state,
		scenes: make(map[Page]Scene),
	}
}

// Register 为页面注册场景，重复注册会替换旧场景
func (sm *SceneManager) Register(page Page, scene Scene) {
	if _, exists := sm.scenes[page]; exists {
		log.Printf("[SceneManager] Replacing scene for page %s", page)
	}
	sm.scenes[page] = scene
}

// SetBackground 设置背景图层
func (sm *SceneManager) SetBackground(layer Layer) {
	sm.background = layer
}

// SetOverlay 设置覆盖图层
func (sm *SceneManager) SetOverlay(layer Layer) {
	sm.overlay = layer
}

// GetCurrentScene 返回当前页面的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.scenes[sm.state.Page]
}

// Update updates the background and the active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.background != nil {
		sm.background.Update(deltaTime)
	}
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Update(deltaTime)
	}
	if sm.overlay != nil {
		sm.overlay.Update(deltaTime)
	}
}

// Draw renders background, active scene and overlay in that order.
func (sm *SceneManager) Draw(ctx render.Context2D) {
	if sm.background != nil {
		sm.background.Draw(ctx)
	}
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.Draw(ctx)
	}
	if sm.overlay != nil {
		sm.overlay.Draw(ctx)
	}
}

// HandleAction forwards an action to the active scene.
func (sm *SceneManager) HandleAction(action input.Action) {
	if scene := sm.GetCurrentScene(); scene != nil {
		scene.HandleAction(action)
	}
}
