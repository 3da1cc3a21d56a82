// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/embedded"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/scenes"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 默认音量
const (
	defaultMusicVolume = 0.5
	defaultSoundVolume = 0.8
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ContentPath 任务内容 YAML 文件，为空则使用嵌入的 data/mission.yaml
	ContentPath string
	// SecretFile 本地密码文件，为空则使用 MISSION_SECRET_FILE 或 secret.yaml
	SecretFile string
	// MusicPath 背景音乐文件，为空或加载失败时使用合成音乐
	MusicPath string
	// Watch 监听 ContentPath 变化并热重载
	Watch bool
	// AppName 会话存储目录名
	AppName string
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	ctx     *scenes.Context
	mission *scenes.Mission
	music   *game.MusicToggle
	watcher *config.ContentWatcher

	entityManager  *ecs.EntityManager
	backdrop       *systems.BackdropSystem
	backdropRender *systems.BackdropRenderSystem
	lifetime       *systems.LifetimeSystem

	width, height            int
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	content, err := LoadContent(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("任务内容加载失败: %w", err)
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	// 创建资源管理器
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadFonts(); err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager, defaultMusicVolume, defaultSoundVolume)
	audioManager.LoadMusic(cfg.MusicPath)
	audioManager.PrepareEffects()
	log.Printf("[App] AudioManager initialized")

	secret, err := config.LoadSecretConfig(cfg.SecretFile)
	if err != nil {
		// 密码文件损坏时按未配置处理，所有输入都会被拒绝
		log.Printf("[App] Warning: %v", err)
	}

	appName := cfg.AppName
	if appName == "" {
		appName = "moonmission"
	}

	ctx := scenes.NewContext(content)
	ctx.Resources = resourceManager
	ctx.Sounds = audioManager
	ctx.Session = game.OpenSessionStore(appName)

	music := game.NewMusicToggle(audioManager)
	ctx.State.Music = music

	mission := scenes.NewMission(ctx, game.NewPasscodeGate(secret.Code))

	em := ecs.NewEntityManager()
	a := &App{
		ctx:            ctx,
		mission:        mission,
		music:          music,
		entityManager:  em,
		backdrop:       systems.NewBackdropSystem(em, ctx.Scheduler, rand.New(rand.NewSource(time.Now().UnixNano()))),
		backdropRender: systems.NewBackdropRenderSystem(em),
		lifetime:       systems.NewLifetimeSystem(em),
		width:          config.WindowWidth,
		height:         config.WindowHeight,
		verbose:        cfg.Verbose,
	}

	if cfg.Watch {
		if cfg.ContentPath == "" {
			log.Printf("[App] Warning: --watch needs --content, hot reload disabled")
		} else if watcher, err := config.NewContentWatcher(cfg.ContentPath); err != nil {
			log.Printf("[App] Warning: hot reload disabled: %v", err)
		} else {
			a.watcher = watcher
		}
	}

	a.backdrop.Start(float64(a.width), float64(a.height))
	page := mission.Start()
	log.Printf("[App] Mission started on %s", page)
	return a, nil
}

// LoadContent 加载任务内容
// path 为空时读取嵌入的默认内容；path 指定的文件无效时同样降级为默认内容
func LoadContent(path string) (*config.MissionConfig, error) {
	if path != "" {
		content, err := config.LoadMissionConfig(path)
		if err == nil {
			log.Printf("[App] Mission content loaded from %s", path)
			return content, nil
		}
		log.Printf("[App] Warning: %v (using embedded content)", err)
	}

	data, err := embedded.ReadFile(embedded.MissionPath)
	if err != nil {
		return nil, err
	}
	content, err := config.ParseMissionConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", embedded.MissionPath, err)
	}
	return content, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端始终全屏）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / 60.0

	input := utils.GetInputState()
	if input.JustPressed {
		// 先处理开关按钮，再处理首次点击自动播放：点击开关本身不会被立即暂停
		// 开关上的按下不再传给当前页面（例如不会顺带关闭回忆弹窗）
		if a.musicButtonRect().Contains(input.Point()) {
			a.music.Toggle()
			utils.ConsumePress()
		}
		a.music.OnGlobalClick()
	}

	a.pollContent()

	a.ctx.Scheduler.Update(deltaTime)
	a.backdrop.Update(deltaTime)
	a.lifetime.Update(deltaTime)
	a.entityManager.RemoveMarkedEntities()

	a.ctx.Navigator.Update(deltaTime)
	return nil
}

// pollContent 应用热重载的内容，新内容在之后进入的页面生效
func (a *App) pollContent() {
	if a.watcher == nil {
		return
	}
	if content := a.watcher.Poll(); content != nil {
		a.ctx.SetContent(content)
		log.Printf("[App] Mission content reloaded")
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	stops := config.DefaultGradient
	if a.ctx.State.Background == game.BackgroundCelebration {
		stops = config.CelebrationGradient
	}
	a.backdropRender.DrawGradient(screen, stops)
	a.backdropRender.Draw(screen)
	a.ctx.Navigator.Draw(screen)
	a.drawMusicButton(screen)
}

// musicButtonRect 右上角音乐开关
func (a *App) musicButtonRect() utils.Rect {
	return utils.Rect{
		X: float64(a.width) - config.MusicButtonSize - config.MusicButtonMargin,
		Y: config.MusicButtonMargin,
		W: config.MusicButtonSize,
		H: config.MusicButtonSize,
	}
}

// drawMusicButton 播放中显示暂停图标（两条竖线），否则显示音符
func (a *App) drawMusicButton(screen *ebiten.Image) {
	r := a.musicButtonRect()
	cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
	radius := float32(r.W / 2)

	vector.DrawFilledCircle(screen, cx, cy, radius, config.ColorPanel, true)
	vector.StrokeCircle(screen, cx, cy, radius, 2, config.ColorPanelBorder, true)

	if a.music.Playing() {
		vector.DrawFilledRect(screen, cx-8, cy-9, 5, 18, config.ColorAccentCyan, true)
		vector.DrawFilledRect(screen, cx+3, cy-9, 5, 18, config.ColorAccentCyan, true)
		return
	}
	vector.DrawFilledCircle(screen, cx-4, cy+7, 5, config.ColorMoonCream, true)
	vector.StrokeLine(screen, cx, cy+7, cx, cy-11, 2, config.ColorMoonCream, true)
	vector.StrokeLine(screen, cx, cy-11, cx+7, cy-6, 2, config.ColorMoonCream, true)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸跟随窗口尺寸，页面布局按视口比例计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return a.width, a.height
	}
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.mission.Resize(float64(outsideWidth), float64(outsideHeight))
		a.backdrop.SetViewport(float64(outsideWidth), float64(outsideHeight))
		log.Printf("[App] Viewport resized to %dx%d", outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// Title 窗口标题
func (a *App) Title() string {
	return a.ctx.Content().Title
}

// Close 释放热重载监听
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
