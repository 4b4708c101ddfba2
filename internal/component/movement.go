// component/movement.go
package component

// Position — компонент позиции (левый верхний угол спрайта в пикселях)
type Position struct {
	X, Y float64
}

// Direction — направление хода игрока
type Direction int

const (
	DirectionNone Direction = iota // Клавиша не нажата, ход не делается
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "none"
}
