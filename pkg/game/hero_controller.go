package game

import "log"

// VisibilityState 英雄层（全屏 3D 场景）的可见状态
type VisibilityState int

const (
	// VisibilityShown 英雄层覆盖整个视口（初始状态）
	VisibilityShown VisibilityState = iota
	// VisibilityDismissed 英雄层已关闭，作品集内容可见（本次运行的终态）
	VisibilityDismissed
)

// String 返回状态名称（用于日志）
func (s VisibilityState) String() string {
	switch s {
	case VisibilityShown:
		return "SHOWN"
	case VisibilityDismissed:
		return "DISMISSED"
	default:
		return "UNKNOWN"
	}
}

// HeroController 持有英雄层的可见标志
//
// 由组合根（app.App）独占持有：Dismiss 作为零参数回调传给英雄场景，
// State/IsShown 供组合根决定是否挂载英雄场景。
//
// 状态只能 SHOWN → DISMISSED，没有回到 SHOWN 的路径；
// 新进程（相当于页面刷新）总是从 SHOWN 开始，不做持久化。
type HeroController struct {
	state     VisibilityState
	listeners []func()
}

// NewHeroController 创建处于 SHOWN 状态的控制器
func NewHeroController() *HeroController {
	return &HeroController{state: VisibilityShown}
}

// State 返回当前可见状态
func (c *HeroController) State() VisibilityState {
	return c.state
}

// IsShown 英雄层是否仍然可见
func (c *HeroController) IsShown() bool {
	return c.state == VisibilityShown
}

// Dismiss 关闭英雄层
//
// 幂等：已经是 DISMISSED 时什么也不做。
// 首次调用时按注册顺序通知监听者（每个监听者最多被调用一次）。
func (c *HeroController) Dismiss() {
	if c.state == VisibilityDismissed {
		return
	}
	c.state = VisibilityDismissed
	log.Printf("[HeroController] %s -> %s", VisibilityShown, VisibilityDismissed)

	listeners := c.listeners
	c.listeners = nil
	for _, fn := range listeners {
		fn()
	}
}

// OnDismiss 注册关闭时的回调
// 如果已经关闭，回调不会被调用
func (c *HeroController) OnDismiss(fn func()) {
	if fn == nil || c.state == VisibilityDismissed {
		return
	}
	c.listeners = append(c.listeners, fn)
}
