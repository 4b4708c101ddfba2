package system

import (
	"go-bug-run/internal/config"
	"go-bug-run/internal/entity"
	"go-bug-run/internal/event"
	"go-bug-run/internal/utils"
	"go-bug-run/pkg/grid"
)

func newWorld(seed int64) (*entity.World, *utils.PRNGService) {
	rng := utils.NewPRNGService(seed)
	w := entity.NewWorld(rng, entity.Points{Star: config.StarPoints, Key: config.KeyPoints})
	return w, rng
}

// parkEnemies уводит врагов далеко от поля, чтобы они не мешали проверкам
func parkEnemies(w *entity.World) {
	for _, e := range w.Enemies {
		e.X = -1000
	}
}

// parkCollectables убирает предметы из клеток, где их может задеть игрок
func parkCollectables(w *entity.World) {
	for _, c := range w.Collectables {
		c.X, c.Y = -1000, -1000
	}
}

func placePlayer(w *entity.World, cell grid.Cell) {
	w.Player.X, w.Player.Y = w.Dims.ToPixel(cell)
}

func validSpeed(v float64) bool {
	return v == 50 || v == 100 || v == 150 || v == 200
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
