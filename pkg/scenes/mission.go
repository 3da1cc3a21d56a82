package scenes

import (
	"log"

	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
)

// Mission 把十个页面注册到导航器，并连接页面进入动画和重新开始时的重置
type Mission struct {
	ctx      *Context
	confetti *systems.ConfettiSystem

	Gate          *GateScene
	Launch        *LaunchScene
	Terminal      *TerminalScene
	Story         *StoryScene
	Constellation *ConstellationScene
	Memories      *MemoryGalleryScene
	Bridge        *GameBridgeScene
	Moon          *MoonScene
	Proposal      *ProposalScene
	Celebration   *CelebrationScene
}

// NewMission 创建全部页面并注册
// ctx.Reload 为 nil 时设置为按会话存储重新加载
func NewMission(ctx *Context, gate *game.PasscodeGate) *Mission {
	content := ctx.Content()
	confetti := systems.NewConfettiSystem(config.ConfettiPoolSize, content.ConfettiPalette(), ctx.Rng)

	m := &Mission{ctx: ctx, confetti: confetti}
	m.Gate = NewGateScene(ctx, gate)
	m.Terminal = NewTerminalScene(ctx)
	m.Launch = NewLaunchScene(ctx, m.Terminal)
	m.Story = NewStoryScene(ctx)
	m.Constellation = NewConstellationScene(ctx)
	m.Memories = NewMemoryGalleryScene(ctx)
	m.Bridge = NewGameBridgeScene(ctx)
	m.Moon = NewMoonScene(ctx)
	m.Proposal = NewProposalScene(ctx, confetti)
	m.Celebration = NewCelebrationScene(ctx, confetti)

	nav := ctx.Navigator
	pages := map[game.PageID]Scene{
		game.PageGate:          m.Gate,
		game.PageLaunch:        m.Launch,
		game.PageTerminal:      m.Terminal,
		game.PageStory:         m.Story,
		game.PageConstellation: m.Constellation,
		game.PageMemoryGallery: m.Memories,
		game.PageGameBridge:    m.Bridge,
		game.PageMoon:          m.Moon,
		game.PageProposal:      m.Proposal,
		game.PageCelebration:   m.Celebration,
	}
	for id, scene := range pages {
		nav.RegisterPage(id, scene)
	}

	// 页面进入动画（终端页由发射页的"开始任务"负责启动）
	nav.OnEnter(game.PageStory, m.Story.Enter)
	nav.OnEnter(game.PageConstellation, m.Constellation.Enter)
	nav.OnEnter(game.PageMoon, m.Moon.Enter)
	nav.OnEnter(game.PageProposal, m.Proposal.Enter)

	nav.OnRestart(m.Terminal.Reset)
	nav.OnRestart(confetti.Stop)
	nav.OnRestart(m.Bridge.QuitMiniGame)
	nav.OnRestart(m.Gate.Reset)

	if ctx.Reload == nil {
		ctx.Reload = m.Reload
	}
	return m
}

// Confetti 返回庆祝页的纸屑系统
func (m *Mission) Confetti() *systems.ConfettiSystem {
	return m.confetti
}

// Start 按会话存储决定起始页面并进入
func (m *Mission) Start() game.PageID {
	return m.ctx.Navigator.Start(m.ctx.Session)
}

// Reload 重新加载：重置所有瞬时状态后按会话存储重新决定起始页面
func (m *Mission) Reload() {
	page := m.ctx.Navigator.Reload(m.ctx.Session)
	log.Printf("[Mission] Reloaded on %s", page)
}

// Resize 视口尺寸变化；庆祝页进行中时同步纸屑绘制面
func (m *Mission) Resize(width, height float64) {
	m.ctx.SetViewport(width, height)
	if m.ctx.Navigator.Current() == game.PageCelebration {
		m.confetti.Resize(width, height)
	}
}
