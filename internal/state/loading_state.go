// internal/state/loading_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-bug-run/internal/app"
	"go-bug-run/internal/assets"
	"go-bug-run/internal/config"
	"go-bug-run/pkg/render/ebitensurface"
)

// Убеждаемся, что LoadingState соответствует интерфейсу State
var _ State = (*LoadingState)(nil)

// LoadingState ждёт, пока кэш загрузит все спрайты, и запускает игру
type LoadingState struct {
	sm      *StateMachine
	game    *app.Game
	cache   *assets.Cache
	surface *ebitensurface.Surface
}

func NewLoadingState(sm *StateMachine, game *app.Game, cache *assets.Cache, surface *ebitensurface.Surface) *LoadingState {
	return &LoadingState{sm: sm, game: game, cache: cache, surface: surface}
}

func (s *LoadingState) Enter() {
	s.cache.OnReady(func() {
		log.Printf("[Assets] %d sprites ready", len(config.AllSprites))
		s.sm.SetState(NewPlayState(s.sm, s.game, s.surface))
	})
	s.cache.Load(config.AllSprites)
}

func (s *LoadingState) Update(deltaTime float64) {
	s.cache.Poll()
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrint(screen, "Loading...")
}

func (s *LoadingState) Exit() {}
