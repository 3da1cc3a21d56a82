package scenes

import (
	"log"
	"time"

	missionaudio "github.com/gonewx/moonmission/internal/audio"
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GateScene 任务控制台（通行密码页）
//
// 密码正确：显示成功提示和外发光，1.5 秒后进入发射页，期间再次提交会被忽略。
// 密码错误：显示错误提示，面板抖动 0.5 秒，清空输入，可以无限重试。
// 回车等同于点击提交按钮。
type GateScene struct {
	page

	gate        *game.PasscodeGate
	inputSystem *systems.TextInputSystem
	inputRender *systems.TextInputRenderSystem
	inputEntity ecs.EntityID
	submit      *components.ButtonComponent

	feedback   string
	feedbackOK bool

	pending      bool
	pendingTimer game.TimerID

	shakeElapsed float64 // 抖动开始后经过的秒数，<0 表示没有抖动
	glow         float64 // 外发光强度 0..1
}

// NewGateScene 创建控制台页面
func NewGateScene(ctx *Context, gate *game.PasscodeGate) *GateScene {
	s := &GateScene{
		page:         newPage(ctx),
		gate:         gate,
		shakeElapsed: -1,
	}
	s.inputSystem = systems.NewTextInputSystem(s.entityManager)
	s.inputRender = systems.NewTextInputRenderSystem(s.entityManager, nil)

	s.inputEntity = s.entityManager.CreateEntity()
	s.entityManager.AddComponent(s.inputEntity, &components.TextInputComponent{
		Width:     config.InputWidth,
		Height:    config.InputHeight,
		MaxLength: config.InputMaxLength,
		Masked:    true,
		IsFocused: true,
	})

	s.submit = s.addButton(ctx.Content().Gate.Button, components.ButtonPrimary, func() { s.Submit() })

	if !gate.Configured() {
		log.Printf("[GateScene] Warning: no secret code configured, every passcode will be denied")
	}
	return s
}

func (s *GateScene) input() *components.TextInputComponent {
	input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, s.inputEntity)
	return input
}

// Input 返回当前输入
func (s *GateScene) Input() string {
	return s.input().Text
}

// SetInput 替换输入内容（光标移到末尾）
func (s *GateScene) SetInput(text string) {
	input := s.input()
	input.Text = text
	input.CursorPosition = len([]rune(text))
}

// Feedback 返回当前提示文字和是否为成功提示
func (s *GateScene) Feedback() (string, bool) {
	return s.feedback, s.feedbackOK
}

// Pending 密码已通过、正在等待跳转
func (s *GateScene) Pending() bool {
	return s.pending
}

// Shaking 面板是否正在抖动
func (s *GateScene) Shaking() bool {
	return s.shakeElapsed >= 0 && s.shakeElapsed < config.ShakeDurationSeconds
}

// Submit 校验当前输入
// 等待跳转期间的提交被忽略，返回 Granted
func (s *GateScene) Submit() game.Verdict {
	if s.pending {
		return game.Granted
	}

	content := s.ctx.Content().Gate
	verdict := s.gate.Verify(s.Input())
	log.Printf("[GateScene] Passcode verdict: %s", verdict)

	if verdict == game.Granted {
		s.feedback, s.feedbackOK = content.Granted, true
		s.pending = true
		s.input().IsFocused = false
		s.ctx.PlaySound(missionaudio.EffectGranted)
		s.pendingTimer = s.ctx.Scheduler.After(time.Duration(config.GrantedDelaySeconds*float64(time.Second)), func() {
			s.pendingTimer = 0
			s.ctx.Navigator.GoToPage(game.PageLaunch)
		})
		return verdict
	}

	s.feedback, s.feedbackOK = content.Denied, false
	s.shakeElapsed = 0
	s.input().Clear()
	s.ctx.PlaySound(missionaudio.EffectDenied)
	return verdict
}

// Reset 清空输入和提示，取消尚未执行的跳转
func (s *GateScene) Reset() {
	if s.pendingTimer != 0 {
		s.ctx.Scheduler.Cancel(s.pendingTimer)
		s.pendingTimer = 0
	}
	s.pending = false
	s.feedback, s.feedbackOK = "", false
	s.shakeElapsed = -1
	s.glow = 0

	input := s.input()
	input.Clear()
	input.IsFocused = true
	input.Placeholder = s.ctx.Content().Gate.Placeholder
	s.submit.Label = s.ctx.Content().Gate.Button
}

// Activate 进入控制台时重置
func (s *GateScene) Activate() {
	s.Reset()
}

// Deactivate 离开时输入框失去焦点
func (s *GateScene) Deactivate() {
	s.input().IsFocused = false
}

// Update 处理输入并推进动画
func (s *GateScene) Update(deltaTime float64) {
	if !s.pending {
		s.inputSystem.Update(deltaTime)
		if utils.IsEnterJustPressed() {
			s.Submit()
		}
	}
	s.layout()
	s.pointer(utils.GetInputState())
	s.Step(deltaTime)
}

// Step 推进抖动和外发光动画
func (s *GateScene) Step(deltaTime float64) {
	if s.shakeElapsed >= 0 {
		s.shakeElapsed += deltaTime
		if s.shakeElapsed >= config.ShakeDurationSeconds {
			s.shakeElapsed = -1
		}
	}
	if s.pending && s.glow < 1 {
		s.glow += deltaTime / config.GrantedDelaySeconds
		if s.glow > 1 {
			s.glow = 1
		}
	}
}

// panelRect 面板位置（含抖动偏移）
func (s *GateScene) panelRect() utils.Rect {
	w, h := s.ctx.Viewport()
	rect := utils.CenteredRect(w/2, h/2, config.GatePanelWidth, config.GatePanelHeight)
	if s.Shaking() {
		rect = rect.Offset(utils.Shake(s.shakeElapsed/config.ShakeDurationSeconds, config.ShakeAmplitude), 0)
	}
	return rect
}

func (s *GateScene) inputRect() utils.Rect {
	panel := s.panelRect()
	return utils.Rect{
		X: panel.X + (panel.W-config.InputWidth)/2,
		Y: panel.Y + 150,
		W: config.InputWidth,
		H: config.InputHeight,
	}
}

func (s *GateScene) layout() {
	panel := s.panelRect()
	s.submit.MoveTo(panel.X+(panel.W-s.submit.Width)/2, panel.Y+220)
}

// Draw 绘制控制台
func (s *GateScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Gate
	panel := s.panelRect()
	cx, _ := panel.Center()

	if s.glow > 0 {
		for i := 3; i >= 1; i-- {
			grow := float32(config.GlowRadius * s.glow * float64(i) / 3)
			vector.DrawFilledRect(screen,
				float32(panel.X)-grow, float32(panel.Y)-grow,
				float32(panel.W)+2*grow, float32(panel.H)+2*grow,
				fadeColor(config.ColorAccentCyan, 0.08*s.glow), true)
		}
	}
	drawPanel(screen, panel, config.ColorPanel, config.ColorPanelBorder)

	drawCentered(screen, s.ctx.Face(game.FontMono, config.FontSizeHeading), content.Heading, cx, panel.Y+40, config.ColorAccentCyan)
	drawCentered(screen, s.ctx.Face(game.FontRegular, config.FontSizeSmall), content.Prompt, cx, panel.Y+100, config.ColorMuted)

	s.inputRender.SetFont(s.ctx.Face(game.FontMono, config.FontSizeBody))
	s.inputRender.DrawEntity(screen, s.inputEntity, s.inputRect())
	s.drawButtons(screen)

	if s.feedback != "" {
		clr := config.ColorNebulaPink
		if s.feedbackOK {
			clr = config.ColorAccentCyan
		}
		drawCentered(screen, s.ctx.Face(game.FontMono, config.FontSizeSmall), s.feedback, cx, panel.Y+panel.H-40, clr)
	}
}
