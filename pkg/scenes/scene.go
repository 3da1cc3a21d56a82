package scenes

import (
	"math/rand"
	"time"

	missionaudio "github.com/gonewx/moonmission/internal/audio"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
// Every page in this package implements the game.Scene interface.
type Scene = game.Scene

// SoundPlayer 播放界面音效，AudioManager 实现此接口
type SoundPlayer interface {
	PlaySound(effect missionaudio.Effect) bool
}

// Context 所有页面共享的依赖
//
// 页面只通过 Context 访问导航、计时、会话存储和当前内容，
// 测试时可以用内存会话存储和固定种子的随机源替换。
type Context struct {
	State     *game.AppState
	Navigator *game.Navigator
	Scheduler *game.Scheduler
	Session   game.SessionStore
	Rng       *rand.Rand

	// Resources 字体来源，可为 nil（测试中不加载字体，文字不绘制）
	Resources *game.ResourceManager
	// Sounds 音效播放器，可为 nil
	Sounds SoundPlayer
	// Reload 重新启动应用（重新读取会话存储决定起始页面），可为 nil
	Reload func()

	content       *config.MissionConfig
	width, height float64
}

// NewContext 创建页面上下文
// 默认使用内存会话存储和以当前时间为种子的随机源，视口为默认窗口大小
func NewContext(content *config.MissionConfig) *Context {
	state := game.NewAppState()
	return &Context{
		State:     state,
		Navigator: game.NewNavigator(state),
		Scheduler: game.NewScheduler(),
		Session:   game.NewMemorySessionStore(),
		Rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		content:   content,
		width:     config.WindowWidth,
		height:    config.WindowHeight,
	}
}

// Content 返回当前任务内容
func (c *Context) Content() *config.MissionConfig {
	return c.content
}

// SetContent 替换任务内容（热重载），之后进入的页面使用新内容
func (c *Context) SetContent(content *config.MissionConfig) {
	if content != nil {
		c.content = content
	}
}

// Viewport 返回视口尺寸
func (c *Context) Viewport() (float64, float64) {
	return c.width, c.height
}

// SetViewport 更新视口尺寸
func (c *Context) SetViewport(width, height float64) {
	c.width, c.height = width, height
}

// PlaySound 播放音效，没有音频设备时静默
func (c *Context) PlaySound(effect missionaudio.Effect) {
	if c.Sounds != nil {
		c.Sounds.PlaySound(effect)
	}
}

// Face 返回字体，未加载字体时返回 nil
func (c *Context) Face(style game.FontStyle, size float64) *text.GoTextFace {
	if c.Resources == nil {
		return nil
	}
	return c.Resources.Face(style, size)
}
