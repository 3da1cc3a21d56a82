package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameCompletedKey 小游戏通关后写入会话存储的键
// 启动时读取一次并立即删除
const GameCompletedKey = "gameCompleted"

// EnterHandler 页面进入动画
type EnterHandler func()

// Navigator 页面导航控制器（有限状态机）
//
// 职责：
//   - 维护页面注册表（PageID -> Scene）
//   - 切换页面：停用旧页面、激活新页面、更新 AppState.Current
//   - 分发页面进入动画（PageID -> EnterHandler 映射，而非条件链）
//   - 重新开始任务：重置瞬时状态并回到 Gate
//
// 状态不变量：AppState.Current 始终是一个已注册页面（Start 之后）。
type Navigator struct {
	state        *AppState
	pages        map[PageID]Scene
	enterHandler map[PageID]EnterHandler
	resetHooks   []func()
	started      bool
}

// NewNavigator 创建导航控制器
// state 为 nil 时使用新的初始状态
func NewNavigator(state *AppState) *Navigator {
	if state == nil {
		state = NewAppState()
	}
	return &Navigator{
		state:        state,
		pages:        make(map[PageID]Scene),
		enterHandler: make(map[PageID]EnterHandler),
	}
}

// State 返回导航器持有的应用状态
func (n *Navigator) State() *AppState {
	return n.state
}

// RegisterPage 注册页面
// 不在固定页面集合内的ID会被忽略
func (n *Navigator) RegisterPage(id PageID, scene Scene) {
	if !id.Valid() {
		log.Printf("[Navigator] Warning: ignoring registration of invalid page %d", int(id))
		return
	}
	n.pages[id] = scene
}

// OnEnter 注册页面进入动画，重复注册会替换旧的处理函数
func (n *Navigator) OnEnter(id PageID, handler EnterHandler) {
	n.enterHandler[id] = handler
}

// OnRestart 注册重新开始任务时执行的重置函数（停止纸屑、取消打字机等）
func (n *Navigator) OnRestart(hook func()) {
	n.resetHooks = append(n.resetHooks, hook)
}

// Current 返回当前页面
func (n *Navigator) Current() PageID {
	return n.state.Current
}

// CurrentScene 返回当前页面的场景，未启动时返回 nil
func (n *Navigator) CurrentScene() Scene {
	if !n.started {
		return nil
	}
	return n.pages[n.state.Current]
}

// IsRegistered 检查页面是否已注册
func (n *Navigator) IsRegistered(id PageID) bool {
	_, ok := n.pages[id]
	return ok
}

// GoToPage 切换到目标页面
//
// 目标页面未注册时不做任何改变并返回 false。
// 否则停用当前页面、激活目标页面、更新状态，然后同步执行目标页面的进入动画。
func (n *Navigator) GoToPage(target PageID) bool {
	scene, ok := n.pages[target]
	if !ok {
		log.Printf("[Navigator] Ignoring navigation to unregistered page %s (%d)", target, int(target))
		return false
	}

	if n.started {
		if current, ok := n.pages[n.state.Current].(PageLifecycle); ok {
			current.Deactivate()
		}
	}

	n.state.Current = target
	n.started = true

	if next, ok := scene.(PageLifecycle); ok {
		next.Activate()
	}

	log.Printf("[Navigator] Page -> %s", target)

	if handler, ok := n.enterHandler[target]; ok && handler != nil {
		handler()
	}
	return true
}

// Start 确定初始页面并激活它
//
// 如果会话存储中存在 gameCompleted 标记（由小游戏写入），读取后立即删除；
// 值为 "true" 时直接进入月球页，否则从 Gate 开始。
// store 可为 nil。
func (n *Navigator) Start(store SessionStore) PageID {
	initial := PageGate

	if store != nil {
		if value, ok := store.Get(GameCompletedKey); ok {
			if err := store.Delete(GameCompletedKey); err != nil {
				log.Printf("[Navigator] Warning: failed to clear %s: %v", GameCompletedKey, err)
			}
			if value == "true" {
				log.Printf("[Navigator] Returning from mini-game, jumping to %s", PageMoon)
				initial = PageMoon
			}
		}
	}

	if !n.GoToPage(initial) {
		n.GoToPage(PageGate)
	}
	return n.state.Current
}

// Restart 重新开始任务
// 执行所有重置函数，清空瞬时视觉状态，然后回到 Gate
func (n *Navigator) Restart() {
	log.Printf("[Navigator] Restarting mission")
	for _, hook := range n.resetHooks {
		hook()
	}
	n.state.ResetTransient()
	n.GoToPage(PageGate)
}

// Reload 模拟重新加载应用：执行重置函数、清空瞬时状态，然后按会话存储重新决定起始页面
// 小游戏通关写入 gameCompleted 后调用，应用随即从月球页继续
func (n *Navigator) Reload(store SessionStore) PageID {
	log.Printf("[Navigator] Reloading mission")
	for _, hook := range n.resetHooks {
		hook()
	}
	n.state.ResetTransient()
	return n.Start(store)
}

// Update updates the currently active page.
func (n *Navigator) Update(deltaTime float64) {
	if scene := n.CurrentScene(); scene != nil {
		scene.Update(deltaTime)
	}
}

// Draw renders the currently active page.
func (n *Navigator) Draw(screen *ebiten.Image) {
	if scene := n.CurrentScene(); scene != nil {
		scene.Draw(screen)
	}
}
