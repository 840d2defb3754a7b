// pkg/geom/geom.go
package geom

import "math"

// Point — точка в мировых координатах (y растёт вниз)
type Point struct {
	X, Y float64
}

// Size — ширина и высота
type Size struct {
	Width, Height float64
}

// Rect — выровненный по осям прямоугольник, X/Y — левый верхний угол
type Rect struct {
	X, Y, Width, Height float64
}

// Center возвращает центр прямоугольника
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains — попадает ли точка в прямоугольник, границы включительно
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Distance — евклидово расстояние между точками
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Hitbox — четыре угла фигуры, возможно повёрнутой вокруг центра
type Hitbox struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// NewHitbox строит хитбокс прямоугольника r, повёрнутого на angle радиан вокруг центра.
// При нулевом угле углы совпадают с углами r без тригонометрии.
func NewHitbox(r Rect, angle float64) Hitbox {
	if angle == 0 {
		return Hitbox{
			TopLeft:     Point{r.X, r.Y},
			TopRight:    Point{r.X + r.Width, r.Y},
			BottomLeft:  Point{r.X, r.Y + r.Height},
			BottomRight: Point{r.X + r.Width, r.Y + r.Height},
		}
	}
	c := r.Center()
	cos, sin := math.Cos(angle), math.Sin(angle)
	rotate := func(x, y float64) Point {
		dx, dy := x-c.X, y-c.Y
		return Point{
			X: cos*dx - sin*dy + c.X,
			Y: sin*dx + cos*dy + c.Y,
		}
	}
	return Hitbox{
		TopLeft:     rotate(r.X, r.Y),
		TopRight:    rotate(r.X+r.Width, r.Y),
		BottomLeft:  rotate(r.X, r.Y+r.Height),
		BottomRight: rotate(r.X+r.Width, r.Y+r.Height),
	}
}

// Corners возвращает углы в порядке: низ-лево, низ-право, верх-лево, верх-право
func (h Hitbox) Corners() [4]Point {
	return [4]Point{h.BottomLeft, h.BottomRight, h.TopLeft, h.TopRight}
}

// Lowest возвращает самый нижний угол; при равенстве побеждает первый по порядку Corners
func (h Hitbox) Lowest() Point {
	lowest := h.BottomLeft
	for _, c := range [3]Point{h.BottomRight, h.TopLeft, h.TopRight} {
		if c.Y > lowest.Y {
			lowest = c
		}
	}
	return lowest
}

// AnyCornerIn — лежит ли хотя бы один угол хитбокса внутри r
func (h Hitbox) AnyCornerIn(r Rect) bool {
	for _, c := range h.Corners() {
		if r.Contains(c) {
			return true
		}
	}
	return false
}

// CornersOverlap проверяет столкновение двух хитбоксов: угол a попадает в прямоугольник
// размера other, построенный от любого угла b.
func CornersOverlap(a Hitbox, b Hitbox, other Size) bool {
	for _, c := range a.Corners() {
		for _, oc := range b.Corners() {
			if c.X >= oc.X && c.X <= oc.X+other.Width && c.Y >= oc.Y && c.Y <= oc.Y+other.Height {
				return true
			}
		}
	}
	return false
}
