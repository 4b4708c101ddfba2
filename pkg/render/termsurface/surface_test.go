package termsurface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

var dims = grid.Dimensions{CellWidth: 101, CellHeight: 83, MaxCol: 4, MaxRow: 5}

func newTestSurface(t *testing.T) (*Surface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(50, 18)
	t.Cleanup(screen.Fini)
	glyphs := map[string]Glyph{
		"bug":   {Text: "=B>", Fg: color.RGBA{255, 0, 0, 255}},
		"grass": {Bg: color.RGBA{0, 255, 0, 255}},
	}
	return New(screen, dims, 10, 3, glyphs), screen
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestSize(t *testing.T) {
	s, _ := newTestSurface(t)
	cols, rows := s.Size(505, 498)
	if cols != 50 || rows != 18 {
		t.Errorf("Expected 50x18, got %dx%d", cols, rows)
	}
}

func TestDrawSpriteCentersInCell(t *testing.T) {
	s, screen := newTestSurface(t)
	s.DrawSprite("bug", 0, 75) // полоса 1 попадает в строку сетки 1

	// Центр клетки 1 по вертикали — символьная строка 4, середина спрайта — столбец 5
	if got := string([]rune{runeAt(screen, 4, 4), runeAt(screen, 5, 4), runeAt(screen, 6, 4)}); got != "=B>" {
		t.Errorf("Expected '=B>' on row 4, got %q", got)
	}
}

func TestDrawSpriteUnknownKeyIsNoOp(t *testing.T) {
	s, screen := newTestSurface(t)
	s.DrawSprite("missing", 0, 0)
	for x := 0; x < 10; x++ {
		if r := runeAt(screen, x, 1); r != ' ' && r != 0 {
			t.Fatalf("Expected nothing drawn, found %q at %d", r, x)
		}
	}
}

func TestTileFillAndTextKeepsBackground(t *testing.T) {
	s, screen := newTestSurface(t)
	s.DrawSprite("grass", 0, 0)
	s.DrawText("Hi", 10, 40, render.TextStyle{Color: color.RGBA{0, 0, 0, 255}})

	_, _, st, _ := screen.GetContent(1, 1)
	_, bg, _ := st.Decompose()
	if bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("Expected grass background under the text, got %v", bg)
	}
	if runeAt(screen, 0, 1) != 'H' || runeAt(screen, 1, 1) != 'i' {
		t.Errorf("Expected 'Hi' at row 1")
	}
}

func TestDrawTextAlignment(t *testing.T) {
	s, screen := newTestSurface(t)
	s.DrawText("End", 505, 40, render.TextStyle{Align: render.AlignRight})
	if runeAt(screen, 47, 1) != 'E' || runeAt(screen, 49, 1) != 'd' {
		t.Error("Expected right-aligned text to end at the last column")
	}
	s.DrawText("Mid", 252.5, 210, render.TextStyle{Align: render.AlignCenter})
	if runeAt(screen, 24, 7) != 'M' {
		t.Error("Expected centred text to start at column 24")
	}
}

func TestPixelAtHitsPlayAgainButton(t *testing.T) {
	s, _ := newTestSurface(t)
	button := grid.Rect{X: 160, Y: 360, W: 180, H: 40}
	x, y := s.PixelAt(25, 13)
	if !button.ContainsPoint(x, y) {
		t.Errorf("Expected cell (25, 13) -> (%v, %v) to be inside the button", x, y)
	}
}
