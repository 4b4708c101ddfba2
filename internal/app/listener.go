// internal/app/listener.go
package app

import (
	"log"

	"go-bug-run/internal/event"
)

// GameEventListener пишет игровые события в лог
type GameEventListener struct {
	game   *Game
	logger *log.Logger
}

// AttachLogger подписывает логгер на все игровые события
func AttachLogger(g *Game, logger *log.Logger) *GameEventListener {
	if logger == nil {
		logger = log.Default()
	}
	l := &GameEventListener{game: g, logger: logger}
	for _, t := range []event.EventType{event.PlayerHit, event.ItemCollected, event.HighScoreRaised, event.GameReset} {
		g.EventDispatcher.Subscribe(t, l)
	}
	return l
}

func (l *GameEventListener) OnEvent(e event.Event) {
	run := l.game.RunID.String()
	switch data := e.Data.(type) {
	case event.ItemCollectedData:
		l.logger.Printf("[Game] run=%s %s: %s +%d, score=%d", run, e.Type, data.Kind, data.Points, data.Score)
	case event.ScoreData:
		l.logger.Printf("[Game] run=%s %s: score=%d high=%d", run, e.Type, data.Score, data.HighScore)
	default:
		l.logger.Printf("[Game] run=%s %s", run, e.Type)
	}
}
