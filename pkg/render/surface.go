// pkg/render/surface.go
package render

import (
	"image/color"

	"go-bug-run/pkg/grid"
)

// Align — выравнивание текста относительно точки привязки
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle задаёт размер шрифта, цвет и выравнивание текста.
// Точка привязки по y — базовая линия.
type TextStyle struct {
	Size  float64
	Color color.Color
	Align Align
}

// Surface — поверхность рисования. Ядро игры вызывает только эти примитивы
// и никогда не читает пиксели обратно.
type Surface interface {
	// DrawSprite рисует изображение по ключу кэша в точке (x, y).
	// Если изображение ещё не загружено, вызов ничего не делает.
	DrawSprite(key string, x, y float64)
	FillRect(r grid.Rect, c color.Color)
	DrawText(s string, x, y float64, style TextStyle)
}
