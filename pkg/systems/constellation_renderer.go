package systems

import (
	"log"

	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// constellationDrawSeconds 连线逐条出现的总时长
const constellationDrawSeconds = 1.5

// ConstellationRenderer 星座页的星座图
//
// Render 用新的点和连线替换当前图形（重复进入页面不会叠加绘制）。
// 在绘制面范围内的第一次点击点亮星座并揭示隐藏信息，之后的点击不再有效果。
type ConstellationRenderer struct {
	state  *game.AppState
	bounds utils.Rect

	points []config.ConstellationPoint
	edges  [][2]int
	age    float64
}

// NewConstellationRenderer 创建星座渲染器
func NewConstellationRenderer(state *game.AppState) *ConstellationRenderer {
	return &ConstellationRenderer{
		state:  state,
		bounds: utils.Rect{W: config.ConstellationWidth, H: config.ConstellationHeight},
	}
}

// SetBounds 设置绘制面在屏幕上的位置
func (r *ConstellationRenderer) SetBounds(bounds utils.Rect) {
	r.bounds = bounds
}

// Bounds 返回绘制面位置
func (r *ConstellationRenderer) Bounds() utils.Rect {
	return r.bounds
}

// Render 替换星座图形
// 越界的连线被丢弃
func (r *ConstellationRenderer) Render(points []config.ConstellationPoint, edges [][2]int) {
	r.points = append(r.points[:0], points...)
	r.edges = r.edges[:0]
	for _, e := range edges {
		if e[0] < 0 || e[0] >= len(points) || e[1] < 0 || e[1] >= len(points) {
			log.Printf("[ConstellationRenderer] Warning: dropping edge %v (only %d points)", e, len(points))
			continue
		}
		r.edges = append(r.edges, e)
	}
	r.age = 0
}

// PointCount 当前星星数量
func (r *ConstellationRenderer) PointCount() int {
	return len(r.points)
}

// EdgeCount 当前连线数量
func (r *ConstellationRenderer) EdgeCount() int {
	return len(r.edges)
}

// Active 星座是否已被点亮
func (r *ConstellationRenderer) Active() bool {
	return r.state.HasMarker(game.ElementConstellation, game.MarkerConstellationActive)
}

// Click 处理点击，返回是否触发了揭示
func (r *ConstellationRenderer) Click(x, y float64) bool {
	if !r.bounds.Contains(x, y) {
		return false
	}
	if r.Active() {
		return false
	}
	r.state.AddMarker(game.ElementConstellation, game.MarkerConstellationActive)
	r.state.AddMarker(game.ElementStargazeReveal, game.MarkerRevealed)
	log.Printf("[ConstellationRenderer] Constellation activated")
	return true
}

// Update 推进连线出现动画
func (r *ConstellationRenderer) Update(deltaTime float64) {
	r.age += deltaTime
}

// Draw 绘制连线和星星
// 连线按顺序逐条出现；点亮后连线更亮更粗
func (r *ConstellationRenderer) Draw(screen *ebiten.Image) {
	active := r.Active()

	lineAlpha, lineWidth := 0.4, float32(config.ConstellationLineWidth)
	if active {
		lineAlpha, lineWidth = 1.0, lineWidth*1.5
	}

	shown := len(r.edges)
	if len(r.edges) > 0 && r.age < constellationDrawSeconds {
		shown = int(r.age / constellationDrawSeconds * float64(len(r.edges)))
	}

	for _, e := range r.edges[:shown] {
		a, b := r.points[e[0]], r.points[e[1]]
		vector.StrokeLine(screen,
			float32(r.bounds.X+a.X), float32(r.bounds.Y+a.Y),
			float32(r.bounds.X+b.X), float32(r.bounds.Y+b.Y),
			lineWidth, withAlpha(config.ColorAccentCyan, lineAlpha), true)
	}

	starAlpha := 0.8
	if active {
		starAlpha = 1.0
	}
	for _, p := range r.points {
		vector.DrawFilledCircle(screen,
			float32(r.bounds.X+p.X), float32(r.bounds.Y+p.Y),
			config.ConstellationStarRadius, withAlpha(config.ColorMoonCream, starAlpha), true)
	}
}
