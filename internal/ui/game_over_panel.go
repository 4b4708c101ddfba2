// internal/ui/game_over_panel.go
package ui

import (
	"go-bug-run/internal/config"
	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

// GameOverPanel — всплывающая панель с итоговым счётом и кнопкой перезапуска
type GameOverPanel struct {
	Rect      grid.Rect
	PlayAgain *Button
	format    *Formatter
}

func NewGameOverPanel(f *Formatter) *GameOverPanel {
	return &GameOverPanel{
		Rect:      config.GameOverPanel,
		PlayAgain: NewPlayAgainButton(),
		format:    f,
	}
}

// ScoreText — строка с итоговым счётом
func (p *GameOverPanel) ScoreText(score int) string {
	return p.format.Sprintf("Your score is %d", score)
}

// Draw отрисовывает панель поверх игрового поля
func (p *GameOverPanel) Draw(surface render.Surface, score int) {
	centerX := float64(config.ScreenWidth) / 2

	surface.FillRect(p.Rect, config.OverlayBgColor)
	surface.DrawText(config.GameOverTitle, centerX, config.GameOverTitleY, render.TextStyle{
		Size:  config.OverlayFontSize,
		Color: config.GameOverTextColor,
		Align: render.AlignCenter,
	})

	body := render.TextStyle{Size: config.PanelFontSize, Color: config.OverlayTextColor, Align: render.AlignCenter}
	surface.DrawText(config.GameOverSubtitle, centerX, config.GameOverSubY, body)
	surface.DrawText(p.ScoreText(score), centerX, config.GameOverScoreY, body)

	p.PlayAgain.Draw(surface)
}
