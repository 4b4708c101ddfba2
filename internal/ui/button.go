// internal/ui/button.go
package ui

import (
	"image/color"

	"go-bug-run/internal/config"
	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      grid.Rect
	Text      string
	TextY     float64 // Базовая линия текста
	BgColor   color.Color
	TextColor color.Color
	FontSize  float64
}

// NewPlayAgainButton создает кнопку перезапуска на панели конца игры.
func NewPlayAgainButton() *Button {
	return &Button{
		Rect:      config.PlayAgainRect,
		Text:      config.PlayAgainLabel,
		TextY:     config.PlayAgainTextY,
		BgColor:   config.ButtonColor,
		TextColor: config.ButtonTextColor,
		FontSize:  config.ButtonFontSize,
	}
}

// Contains проверяет, попадает ли точка строго внутрь кнопки.
func (b *Button) Contains(x, y float64) bool {
	return b.Rect.ContainsPoint(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(surface render.Surface) {
	surface.FillRect(b.Rect, b.BgColor)
	surface.DrawText(b.Text, b.Rect.X+b.Rect.W/2, b.TextY, render.TextStyle{
		Size:  b.FontSize,
		Color: b.TextColor,
		Align: render.AlignCenter,
	})
}
