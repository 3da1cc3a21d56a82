package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Point 二维坐标
type Point struct {
	X, Y float64
}

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidTexture 返回 DrawTriangles 使用的纯白贴图（首次调用时创建）
// 取 3x3 图片的中心像素，避免边缘采样带入透明色
func solidTexture() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// StarPolygon 计算星形多边形的顶点
// 从正上方开始，外顶点与内顶点交替，共 2*spikes 个点
func StarPolygon(cx, cy float64, spikes int, outer, inner float64) []Point {
	if spikes < 2 {
		return nil
	}
	points := make([]Point, 0, spikes*2)
	rot := math.Pi / 2 * 3
	step := math.Pi / float64(spikes)
	for i := 0; i < spikes; i++ {
		points = append(points, Point{X: cx + math.Cos(rot)*outer, Y: cy + math.Sin(rot)*outer})
		rot += step
		points = append(points, Point{X: cx + math.Cos(rot)*inner, Y: cy + math.Sin(rot)*inner})
		rot += step
	}
	return points
}

// FillFan 以 (cx, cy) 为中心按扇形三角化填充多边形
// 适用于相对中心为星形可见的多边形（星形、圆形近似）
func FillFan(dst *ebiten.Image, cx, cy float64, points []Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	vertices := make([]ebiten.Vertex, 0, len(points)+1)
	vertices = append(vertices, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 1, SrcY: 1,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for _, p := range points {
		vertices = append(vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}

	indices := make([]uint16, 0, len(points)*3)
	for i := 1; i <= len(points); i++ {
		next := i + 1
		if next > len(points) {
			next = 1
		}
		indices = append(indices, 0, uint16(i), uint16(next))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vertices, indices, solidTexture(), op)
}

// DrawStar 绘制实心五角星等星形（外半径 outer，内半径 inner）
func DrawStar(dst *ebiten.Image, cx, cy float64, spikes int, outer, inner float64, clr color.Color) {
	FillFan(dst, cx, cy, StarPolygon(cx, cy, spikes, outer, inner), clr)
}

// DrawHeart 绘制实心爱心，size 为整体宽度
// 由两个圆和一个倒三角组成
func DrawHeart(dst *ebiten.Image, cx, cy, size float64, clr color.Color) {
	r := size / 4
	top := cy - size/8
	vector.DrawFilledCircle(dst, float32(cx-r), float32(top), float32(r), clr, true)
	vector.DrawFilledCircle(dst, float32(cx+r), float32(top), float32(r), clr, true)

	tri := []Point{
		{X: cx - size/2, Y: top + r*0.3},
		{X: cx, Y: cy + size/2},
		{X: cx + size/2, Y: top + r*0.3},
	}
	FillFan(dst, cx, top+r*0.3, tri, clr)
}

// withAlpha 返回乘以透明度后的颜色（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
