// internal/ui/score_indicator.go
package ui

import (
	"go-bug-run/internal/config"
	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

// ScoreIndicator — плашка со счётом в верхней части экрана
type ScoreIndicator struct {
	Box    grid.Rect
	Label  string
	TextX  float64
	TextY  float64
	Align  render.Align
	format *Formatter
}

// NewScoreIndicator — счёт текущего забега, левый верхний угол
func NewScoreIndicator(f *Formatter) *ScoreIndicator {
	return &ScoreIndicator{
		Box:    config.ScoreBox,
		Label:  "Score",
		TextX:  config.ScoreTextX,
		TextY:  config.OverlayTextY,
		Align:  render.AlignLeft,
		format: f,
	}
}

// NewHighScoreIndicator — рекорд, правый верхний угол
func NewHighScoreIndicator(f *Formatter) *ScoreIndicator {
	return &ScoreIndicator{
		Box:    config.HighScoreBox,
		Label:  "High Score",
		TextX:  config.HighScoreTextX,
		TextY:  config.OverlayTextY,
		Align:  render.AlignRight,
		format: f,
	}
}

// Text возвращает подпись для значения
func (i *ScoreIndicator) Text(value int) string {
	return i.format.Sprintf("%s: %d", i.Label, value)
}

// Draw рисует подложку и подпись
func (i *ScoreIndicator) Draw(surface render.Surface, value int) {
	surface.FillRect(i.Box, config.OverlayBgColor)
	surface.DrawText(i.Text(value), i.TextX, i.TextY, render.TextStyle{
		Size:  config.OverlayFontSize,
		Color: config.OverlayTextColor,
		Align: i.Align,
	})
}
