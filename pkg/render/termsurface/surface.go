// Package termsurface реализует render.Surface поверх терминала (tcell).
// Пиксельные координаты холста масштабируются в символьные ячейки.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

// Glyph — текстовое изображение спрайта
type Glyph struct {
	Text string
	Fg   color.Color
	Bg   color.Color // Если задан, спрайт заливает свою клетку (плитки фона)
}

// Surface рисует в tcell.Screen
type Surface struct {
	screen  tcell.Screen
	dims    grid.Dimensions
	charsX  int // Символов на клетку по горизонтали
	charsY  int // Строк на клетку по вертикали
	anchorX float64
	anchorY float64
	glyphs  map[string]Glyph
}

// New создаёт поверхность. charsX×charsY — размер одной клетки сетки в символах.
func New(screen tcell.Screen, dims grid.Dimensions, charsX, charsY int, glyphs map[string]Glyph) *Surface {
	return &Surface{
		screen:  screen,
		dims:    dims,
		charsX:  charsX,
		charsY:  charsY,
		anchorX: dims.CellWidth / 2,
		anchorY: dims.CellHeight / 2,
		glyphs:  glyphs,
	}
}

// Size возвращает размер холста в символах
func (s *Surface) Size(canvasW, canvasH float64) (cols, rows int) {
	return int(math.Ceil(s.toCol(canvasW))), int(math.Ceil(s.toRow(canvasH)))
}

// toCol и toRow сначала умножают, потом делят, чтобы целые пиксели
// на границах клеток давали точные значения
func (s *Surface) toCol(x float64) float64 { return x * float64(s.charsX) / s.dims.CellWidth }
func (s *Surface) toRow(y float64) float64 { return y * float64(s.charsY) / s.dims.CellHeight }

// PixelAt переводит символьную ячейку в пиксель холста (центр ячейки)
func (s *Surface) PixelAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.dims.CellWidth / float64(s.charsX),
		(float64(row) + 0.5) * s.dims.CellHeight / float64(s.charsY)
}

// DrawSprite рисует глиф по ключу. Плитки заливают клетку, остальные
// спрайты ставятся в центр клетки, куда попадает их середина.
func (s *Surface) DrawSprite(key string, x, y float64) {
	g, ok := s.glyphs[key]
	if !ok {
		return
	}
	if g.Bg != nil {
		s.FillRect(grid.Rect{X: x, Y: y, W: s.dims.CellWidth, H: s.dims.CellHeight}, g.Bg)
	}
	if g.Text == "" {
		return
	}
	cell := s.dims.CellAt(x+s.anchorX, y+s.anchorY)
	row := cell.Row*s.charsY + s.charsY/2
	col := int(math.Floor(s.toCol(x + s.anchorX))) - len([]rune(g.Text))/2
	s.putString(col, row, g.Text, g.Fg)
}

func (s *Surface) FillRect(r grid.Rect, c color.Color) {
	style := tcell.StyleDefault.Background(toTCell(c))
	x0 := int(math.Floor(s.toCol(r.X)))
	x1 := int(math.Ceil(s.toCol(r.X + r.W)))
	y0 := int(math.Floor(s.toRow(r.Y)))
	y1 := int(math.Ceil(s.toRow(r.Y + r.H)))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// DrawText пишет строку на строке, где лежит базовая линия y
func (s *Surface) DrawText(str string, x, y float64, style render.TextStyle) {
	n := len([]rune(str))
	col := int(math.Floor(s.toCol(x)))
	switch style.Align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignRight:
		col -= n
	}
	row := int(math.Floor(s.toRow(y)))
	s.putString(col, row, str, style.Color)
}

// putString пишет текст, сохраняя фон уже нарисованных ячеек
func (s *Surface) putString(col, row int, str string, fg color.Color) {
	for i, r := range []rune(str) {
		_, _, cur, _ := s.screen.GetContent(col+i, row)
		_, bg, _ := cur.Decompose()
		st := tcell.StyleDefault.Background(bg)
		if fg != nil {
			st = st.Foreground(toTCell(fg))
		}
		s.screen.SetContent(col+i, row, r, nil, st)
	}
}

func toTCell(c color.Color) tcell.Color {
	if c == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
