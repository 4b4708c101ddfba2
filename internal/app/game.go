// internal/app/game.go
package app

import (
	"fmt"

	"github.com/google/uuid"

	"go-bug-run/internal/component"
	"go-bug-run/internal/config"
	"go-bug-run/internal/entity"
	"go-bug-run/internal/event"
	"go-bug-run/internal/input"
	"go-bug-run/internal/system"
	"go-bug-run/internal/ui"
	"go-bug-run/internal/utils"
	"go-bug-run/pkg/render"
)

// Game holds the main game state and logic.
type Game struct {
	World           *entity.World
	Settings        config.Settings
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	MovementSystem  *system.MovementSystem
	PlayerSystem    *system.PlayerSystem
	CollisionSystem *system.CollisionSystem
	RenderSystem    *system.RenderSystem

	ScoreIndicator     *ui.ScoreIndicator
	HighScoreIndicator *ui.ScoreIndicator
	GameOverPanel      *ui.GameOverPanel

	RunID uuid.UUID // Меняется при каждом перезапуске, попадает в логи

	input input.Slot
}

// NewGame initializes a new game instance.
func NewGame(settings config.Settings) *Game {
	rng := utils.NewPRNGService(settings.Seed)
	world := entity.NewWorld(rng, entity.Points{Star: settings.StarPoints, Key: settings.KeyPoints})
	dispatcher := event.NewDispatcher()
	format := ui.NewFormatter(settings.Locale)

	g := &Game{
		World:              world,
		Settings:           settings,
		Rng:                rng,
		EventDispatcher:    dispatcher,
		MovementSystem:     system.NewMovementSystem(world, rng),
		PlayerSystem:       system.NewPlayerSystem(world),
		CollisionSystem:    system.NewCollisionSystem(world, rng, dispatcher, settings.Hitbox),
		RenderSystem:       system.NewRenderSystem(world),
		ScoreIndicator:     ui.NewScoreIndicator(format),
		HighScoreIndicator: ui.NewHighScoreIndicator(format),
		GameOverPanel:      ui.NewGameOverPanel(format),
		RunID:              uuid.New(),
	}
	return g
}

// Update выполняет один тик: враги, ход игрока из ячейки ввода, столкновения.
func (g *Game) Update(deltaTime float64) {
	g.MovementSystem.Update(deltaTime)
	g.PlayerSystem.Move(g.input.Take())
	g.CollisionSystem.Update()
}

// Draw рисует кадр: фон и сущности, счёт, рекорд и, если игра окончена,
// панель с кнопкой перезапуска.
func (g *Game) Draw(surface render.Surface) {
	g.RenderSystem.Draw(surface)
	g.ScoreIndicator.Draw(surface, g.World.Score.Value)
	g.HighScoreIndicator.Draw(surface, g.World.Score.High)
	if g.World.GameOver {
		g.GameOverPanel.Draw(surface, g.World.Score.Value)
	}
}

// HandleInput запоминает направление до следующего тика.
// После конца игры ввод игнорируется.
func (g *Game) HandleInput(dir component.Direction) {
	if g.World.GameOver || dir == component.DirectionNone {
		return
	}
	g.input.Set(dir)
}

// HandleClick перезапускает игру, если клик попал в кнопку "Play Again" на
// панели конца игры. Возвращает true, если перезапуск произошёл.
func (g *Game) HandleClick(x, y float64) bool {
	if !g.World.GameOver || !g.GameOverPanel.PlayAgain.Contains(x, y) {
		return false
	}
	g.Reset()
	return true
}

// Restart перезапускает игру с клавиатуры, только после конца игры.
func (g *Game) Restart() bool {
	if !g.World.GameOver {
		return false
	}
	g.Reset()
	return true
}

// Reset начинает новый забег. Рекорд сохраняется.
func (g *Game) Reset() {
	g.World.Reset()
	g.input.Clear()
	g.RunID = uuid.New()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameReset,
		Data: event.ScoreData{Score: g.World.Score.Value, HighScore: g.World.Score.High},
	})
}

// IsGameOver сообщает, окончена ли игра
func (g *Game) IsGameOver() bool {
	return g.World.GameOver
}

// PendingInput возвращает направление, ожидающее следующего тика
func (g *Game) PendingInput() component.Direction {
	return g.input.Peek()
}

// ShareText — строка для буфера обмена
func (g *Game) ShareText() string {
	return fmt.Sprintf("I scored %d in Bug Run (high score %d)", g.World.Score.Value, g.World.Score.High)
}
