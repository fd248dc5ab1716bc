package reorder

import "math"

// Point 指针位置（视口坐标）
type Point struct {
	X float64
	Y float64
}

// Rect 元素的包围盒
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center 包围盒中心点
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// At 把包围盒左上角移动到 p
func (r Rect) At(p Point) Rect {
	r.Left, r.Top = p.X, p.Y
	return r
}

// Sub 向量差 p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance 欧氏距离
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
