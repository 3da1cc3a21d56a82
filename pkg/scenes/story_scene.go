package scenes

import (
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// StoryScene 故事页：逐行淡入的任务日志
type StoryScene struct {
	page
	fadeLines

	next *components.ButtonComponent
}

// NewStoryScene 创建故事页
func NewStoryScene(ctx *Context) *StoryScene {
	s := &StoryScene{
		page:      newPage(ctx),
		fadeLines: newFadeLines(ctx.Scheduler),
	}
	s.next = s.addButton(ctx.Content().Story.Button, components.ButtonPrimary, func() {
		s.ctx.Navigator.GoToPage(game.PageConstellation)
	})
	return s
}

// Enter 页面进入动画
func (s *StoryScene) Enter() {
	content := s.ctx.Content().Story
	s.next.Label = content.Button
	s.fade.PlayLines(content.Lines)
}

// Update 处理输入并推进淡入
func (s *StoryScene) Update(deltaTime float64) {
	s.layout()
	s.pointer(utils.GetInputState())
	s.fade.Update(deltaTime)
}

func (s *StoryScene) layout() {
	_, h := s.ctx.Viewport()
	s.next.MoveTo(s.centerX()-s.next.Width/2, h*0.78)
}

// Draw 绘制故事页
func (s *StoryScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Story
	_, h := s.ctx.Viewport()
	cx := s.centerX()

	drawCentered(screen, s.ctx.Face(game.FontMono, config.FontSizeHeading), content.Heading, cx, h*0.14, config.ColorAccentCyan)
	s.draw(screen, s.ctx, content.Lines, cx, h*0.3)
	s.drawButtons(screen)
}
