// component/movement.go
package component

import "go-adventurer/pkg/geom"

// Body — позиция, размер и поворот сущности. Хитбокс не хранится,
// а вычисляется из текущих полей, поэтому он никогда не устаревает.
type Body struct {
	X, Y          float64 // Левый верхний угол
	Width, Height float64
	Angle         float64 // Поворот в радианах вокруг центра
}

// Rect возвращает выровненный по осям прямоугольник без учёта поворота
func (b *Body) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Hitbox возвращает углы с учётом поворота
func (b *Body) Hitbox() geom.Hitbox {
	return geom.NewHitbox(b.Rect(), b.Angle)
}

// Center — центр тела
func (b *Body) Center() geom.Point {
	return geom.Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Size — размер тела
func (b *Body) Size() geom.Size {
	return geom.Size{Width: b.Width, Height: b.Height}
}
