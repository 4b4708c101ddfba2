// pkg/grid/rect.go
package grid

// Rect — ось-ориентированный прямоугольник в пикселях
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps проверяет пересечение двух прямоугольников.
// Сравнения строгие, поэтому соседние клетки, касающиеся гранью, не пересекаются.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ContainsPoint проверяет, лежит ли точка строго внутри прямоугольника
func (r Rect) ContainsPoint(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Inset сужает прямоугольник на dx по горизонтали и dy по вертикали с каждой стороны
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}
