package component

// Enemy представляет жука, который едет по своей полосе слева направо.
type Enemy struct {
	Position
	Speed  float64 // Пикселей в секунду
	Sprite string
}
