// internal/system/collision.go
package system

import (
	"go-bug-run/internal/component"
	"go-bug-run/internal/config"
	"go-bug-run/internal/entity"
	"go-bug-run/internal/event"
	"go-bug-run/internal/utils"
	"go-bug-run/pkg/grid"
)

// CollisionSystem проверяет пересечения игрока с врагами и предметами
// и применяет последствия: конец игры, рекорд, очки.
type CollisionSystem struct {
	world      *entity.World
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	hitbox     config.HitboxMode
}

func NewCollisionSystem(world *entity.World, rng *utils.PRNGService, dispatcher *event.Dispatcher, hitbox config.HitboxMode) *CollisionSystem {
	return &CollisionSystem{world: world, rng: rng, dispatcher: dispatcher, hitbox: hitbox}
}

// Update выполняет обе проверки за тик
func (s *CollisionSystem) Update() {
	s.CheckEnemies()
	s.CheckCollectables()
}

// PlayerBox — прямоугольник игрока размером в одну клетку
func (s *CollisionSystem) PlayerBox() grid.Rect {
	p := s.world.Player
	return grid.Rect{X: p.X, Y: p.Y, W: s.world.Dims.CellWidth, H: s.world.Dims.CellHeight}
}

// EnemyHit проверяет, задевает ли игрок врага
func (s *CollisionSystem) EnemyHit(enemy *component.Enemy) bool {
	w, h := s.world.Dims.CellWidth, s.world.Dims.CellHeight
	player := s.PlayerBox()
	if s.hitbox == config.HitboxLegacy {
		// Узкая полоса [x+30, x+50) нулевой высоты на нижней кромке клетки врага
		band := grid.Rect{
			X: enemy.X + config.LegacyHitboxLeft,
			Y: enemy.Y + h,
			W: config.LegacyHitboxRight - config.LegacyHitboxLeft,
			H: 0,
		}
		return player.Overlaps(band)
	}
	enemyBox := grid.Rect{X: enemy.X, Y: enemy.Y, W: w, H: h}
	return player.Inset(config.HitboxInsetX, config.HitboxInsetY).
		Overlaps(enemyBox.Inset(config.HitboxInsetX, config.HitboxInsetY))
}

// CheckEnemies проверяет всех врагов каждый тик, в том числе после конца
// игры. Повторное срабатывание ничего не меняет.
func (s *CollisionSystem) CheckEnemies() {
	for _, enemy := range s.world.Enemies {
		if !s.EnemyHit(enemy) {
			continue
		}
		if s.world.Score.RaiseHigh() {
			s.dispatch(event.HighScoreRaised, s.scoreData())
		}
		if !s.world.GameOver {
			s.world.GameOver = true
			s.dispatch(event.PlayerHit, s.scoreData())
		}
	}
}

// CheckCollectables начисляет очки за предметы под игроком и переносит их
// в новую случайную клетку.
func (s *CollisionSystem) CheckCollectables() {
	player := s.PlayerBox()
	for _, c := range s.world.Collectables {
		box := grid.Rect{X: c.X, Y: c.Y, W: s.world.Dims.CellWidth, H: s.world.Dims.CellHeight}
		if !player.Overlaps(box) {
			continue
		}
		s.world.Score.Value += c.Points
		s.Relocate(c)
		s.dispatch(event.ItemCollected, event.ItemCollectedData{
			Kind:   c.Kind.String(),
			Points: c.Points,
			Score:  s.world.Score.Value,
		})
	}
}

// Relocate переносит предмет в случайную клетку из [1,4]×[1,4], кроме
// клетки игрока, чтобы стоящий на месте игрок не получил очки дважды.
func (s *CollisionSystem) Relocate(c *component.Collectable) {
	playerCell := s.world.PlayerCell()
	all := grid.CellsIn(config.CollectableMinCell, config.CollectableMaxCell,
		config.CollectableMinCell, config.CollectableMaxCell)
	candidates := all[:0]
	for _, cell := range all {
		if cell != playerCell {
			candidates = append(candidates, cell)
		}
	}
	cell := candidates[s.rng.Intn(len(candidates))]
	c.X, c.Y = s.world.Dims.ToPixel(cell)
}

func (s *CollisionSystem) scoreData() event.ScoreData {
	return event.ScoreData{Score: s.world.Score.Value, HighScore: s.world.Score.High}
}

func (s *CollisionSystem) dispatch(t event.EventType, data any) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
