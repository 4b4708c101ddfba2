// internal/state/play_state.go
package state

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bug-run/internal/app"
	"go-bug-run/internal/component"
	"go-bug-run/internal/config"
	"go-bug-run/pkg/render/ebitensurface"
)

var _ State = (*PlayState)(nil)

// Направление выбирается при отпускании клавиши
var arrowKeys = map[ebiten.Key]component.Direction{
	ebiten.KeyArrowLeft:  component.DirectionLeft,
	ebiten.KeyArrowUp:    component.DirectionUp,
	ebiten.KeyArrowRight: component.DirectionRight,
	ebiten.KeyArrowDown:  component.DirectionDown,
}

// PlayState — состояние игры: переводит ввод ebiten в команды игре и
// выполняет тик.
type PlayState struct {
	sm      *StateMachine
	game    *app.Game
	surface *ebitensurface.Surface
}

func NewPlayState(sm *StateMachine, game *app.Game, surface *ebitensurface.Surface) *PlayState {
	return &PlayState{sm: sm, game: game, surface: surface}
}

func (s *PlayState) Enter() {
	log.Printf("[Game] run=%s started", s.game.RunID)
}

func (s *PlayState) Update(deltaTime float64) {
	for key, dir := range arrowKeys {
		if inpututil.IsKeyJustReleased(key) {
			s.game.HandleInput(dir)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.game.HandleClick(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		s.game.HandleClick(float64(x), float64(y))
	}

	if s.game.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.game.Restart()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			s.copyScore()
		}
	}

	s.game.Update(deltaTime)
}

func (s *PlayState) copyScore() {
	if err := clipboard.WriteAll(s.game.ShareText()); err != nil {
		log.Printf("[Game] failed to copy score: %v", err)
		return
	}
	log.Println("[Game] score copied to clipboard")
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.surface.SetTarget(screen)
	s.game.Draw(s.surface)
}

func (s *PlayState) Exit() {}
