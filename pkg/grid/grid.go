// pkg/grid/grid.go
package grid

// Cell представляет клетку сетки в координатах (столбец, строка)
type Cell struct {
	Col, Row int
}

// Dimensions описывает размер клетки в пикселях и допустимые границы сетки
type Dimensions struct {
	CellWidth  float64
	CellHeight float64
	MaxCol     int // Последний допустимый столбец (включительно)
	MaxRow     int // Последняя допустимая строка (включительно)
}

// Cols возвращает число столбцов сетки
func (d Dimensions) Cols() int {
	return d.MaxCol + 1
}

// Rows возвращает число строк сетки
func (d Dimensions) Rows() int {
	return d.MaxRow + 1
}

// ToPixel конвертирует клетку в пиксельные координаты её левого верхнего угла
func (d Dimensions) ToPixel(c Cell) (x, y float64) {
	return float64(c.Col) * d.CellWidth, float64(c.Row) * d.CellHeight
}

// CellAt конвертирует пиксельные координаты в клетку, в которой они лежат
func (d Dimensions) CellAt(x, y float64) Cell {
	return Cell{Col: floorDiv(x, d.CellWidth), Row: floorDiv(y, d.CellHeight)}
}

// Contains проверяет, лежит ли клетка внутри сетки
func (d Dimensions) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col <= d.MaxCol && c.Row >= 0 && c.Row <= d.MaxRow
}

// CellRect возвращает прямоугольник клетки
func (d Dimensions) CellRect(c Cell) Rect {
	x, y := d.ToPixel(c)
	return Rect{X: x, Y: y, W: d.CellWidth, H: d.CellHeight}
}

// CellsIn перечисляет все клетки прямоугольной области [minCol..maxCol]×[minRow..maxRow]
// построчно, слева направо.
func CellsIn(minCol, maxCol, minRow, maxRow int) []Cell {
	if maxCol < minCol || maxRow < minRow {
		return nil
	}
	cells := make([]Cell, 0, (maxCol-minCol+1)*(maxRow-minRow+1))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

func floorDiv(v, size float64) int {
	if size <= 0 {
		return 0
	}
	q := int(v / size)
	if v < 0 && float64(q)*size != v {
		q--
	}
	return q
}
