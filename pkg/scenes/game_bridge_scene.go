package scenes

import (
	"fmt"
	"log"
	"time"

	missionaudio "github.com/gonewx/moonmission/internal/audio"
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// miniGameReloadDelay 通关后显示结果多久再重新加载
const miniGameReloadDelay = 1500 * time.Millisecond

// GameBridgeScene 小游戏入口页
//
// "Play" 在本页内打开接爱心小游戏；通关后把 gameCompleted 写入会话存储并重新加载，
// 应用随即从月球页继续。"Skip" 直接进入月球页。游戏中按 Esc 退出小游戏。
type GameBridgeScene struct {
	page

	play *components.ButtonComponent
	skip *components.ButtonComponent

	miniGame    *systems.MiniGameSystem
	reloadTimer game.TimerID
}

// NewGameBridgeScene 创建小游戏入口页
func NewGameBridgeScene(ctx *Context) *GameBridgeScene {
	s := &GameBridgeScene{page: newPage(ctx)}
	content := ctx.Content().Bridge
	s.play = s.addButton(content.Play, components.ButtonAccent, func() { s.StartMiniGame() })
	s.skip = s.addButton(content.Skip, components.ButtonGhost, func() { s.Skip() })
	return s
}

// Playing 小游戏是否正在进行
func (s *GameBridgeScene) Playing() bool {
	return s.miniGame != nil
}

// MiniGame 返回当前小游戏，未开始时为 nil
func (s *GameBridgeScene) MiniGame() *systems.MiniGameSystem {
	return s.miniGame
}

// StartMiniGame 打开小游戏
func (s *GameBridgeScene) StartMiniGame() {
	w, h := s.ctx.Viewport()
	s.miniGame = systems.NewMiniGameSystem(w, h, s.ctx.Content().Bridge.Goal, s.ctx.Rng)
	s.miniGame.OnCatch = func(int) { s.ctx.PlaySound(missionaudio.EffectCatch) }
	s.miniGame.OnWin = s.complete
	s.play.Hidden, s.skip.Hidden = true, true
	log.Printf("[GameBridge] Mini-game started (goal %d)", s.miniGame.Goal)
}

// QuitMiniGame 退出小游戏回到入口页，未完成的进度丢弃
func (s *GameBridgeScene) QuitMiniGame() {
	if s.reloadTimer != 0 {
		s.ctx.Scheduler.Cancel(s.reloadTimer)
		s.reloadTimer = 0
	}
	s.miniGame = nil
	s.play.Hidden, s.skip.Hidden = false, false
}

// Skip 跳过小游戏
func (s *GameBridgeScene) Skip() {
	s.ctx.Navigator.GoToPage(game.PageMoon)
}

// complete 通关：写入会话标记，稍后重新加载
func (s *GameBridgeScene) complete() {
	if err := s.ctx.Session.Set(game.GameCompletedKey, "true"); err != nil {
		log.Printf("[GameBridge] Warning: failed to store %s: %v", game.GameCompletedKey, err)
		s.ctx.Navigator.GoToPage(game.PageMoon)
		return
	}
	s.reloadTimer = s.ctx.Scheduler.After(miniGameReloadDelay, func() {
		s.reloadTimer = 0
		if s.ctx.Reload != nil {
			s.ctx.Reload()
			return
		}
		s.ctx.Navigator.Start(s.ctx.Session)
	})
}

// Activate 进入时显示入口
func (s *GameBridgeScene) Activate() {
	content := s.ctx.Content().Bridge
	s.play.Label, s.skip.Label = content.Play, content.Skip
	s.QuitMiniGame()
}

// Deactivate 离开时关闭小游戏
func (s *GameBridgeScene) Deactivate() {
	s.QuitMiniGame()
}

// Update 处理输入；游戏中篮子跟随指针
func (s *GameBridgeScene) Update(deltaTime float64) {
	s.layout()
	input := utils.GetInputState()
	if s.miniGame == nil {
		s.pointer(input)
		return
	}
	if utils.IsEscapeJustPressed() {
		s.QuitMiniGame()
		return
	}
	s.miniGame.MoveBasket(float64(input.X))
	s.miniGame.Update(deltaTime)
}

func (s *GameBridgeScene) layout() {
	_, h := s.ctx.Viewport()
	cx := s.centerX()
	s.play.MoveTo(cx-s.play.Width-10, h*0.6)
	s.skip.MoveTo(cx+10, h*0.6)
}

// Draw 绘制入口或小游戏
func (s *GameBridgeScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Bridge
	_, h := s.ctx.Viewport()
	cx := s.centerX()

	if s.miniGame == nil {
		drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeHeading), content.Heading, cx, h*0.25, config.ColorMoonCream)
		drawCentered(screen, s.ctx.Face(game.FontRegular, config.FontSizeBody), content.Body, cx, h*0.25+70, config.ColorMuted)
		s.drawButtons(screen)
		return
	}

	s.miniGame.Draw(screen)
	status := fmt.Sprintf("%d / %d", s.miniGame.Caught, s.miniGame.Goal)
	if s.miniGame.Won() {
		status = content.Won
	}
	drawText(screen, s.ctx.Face(game.FontMono, config.FontSizeBody), status, cx, 24, config.ColorAccentCyan, 1, text.AlignCenter)
}
