// internal/entity/world.go
package entity

import (
	"go-bug-run/internal/component"
	"go-bug-run/internal/config"
	"go-bug-run/internal/utils"
	"go-bug-run/pkg/grid"
)

// World хранит всё изменяемое состояние игры: игрока, врагов, предметы,
// счёт и флаг окончания. Создаётся один раз и дальше только сбрасывается.
type World struct {
	Dims         grid.Dimensions
	Player       *component.Player
	Enemies      []*component.Enemy
	Collectables []*component.Collectable
	Score        component.Score
	GameOver     bool
}

// Points задаёт очки за каждый вид предмета
type Points struct {
	Star int
	Key  int
}

// NewWorld создаёт мир в стартовом состоянии: три врага на своих полосах,
// звезда и ключ в случайных клетках, игрок в стартовой клетке.
func NewWorld(rng *utils.PRNGService, points Points) *World {
	w := &World{
		Dims:   config.Dims,
		Player: &component.Player{Sprite: config.SpritePlayer},
	}
	for _, laneY := range config.EnemyLanes {
		w.Enemies = append(w.Enemies, &component.Enemy{
			Position: component.Position{X: 0, Y: laneY},
			Speed:    EnemySpeed(rng),
			Sprite:   config.SpriteEnemy,
		})
	}
	w.Collectables = []*component.Collectable{
		newCollectable(component.KindStar, config.SpriteStar, points.Star),
		newCollectable(component.KindKey, config.SpriteKey, points.Key),
	}
	for _, c := range w.Collectables {
		cell := grid.Cell{
			Col: rng.IntRange(config.CollectableMinCell, config.CollectableMaxCell),
			Row: rng.IntRange(config.CollectableMinCell, config.CollectableMaxCell),
		}
		c.X, c.Y = w.Dims.ToPixel(cell)
	}
	w.Reset()
	return w
}

func newCollectable(kind component.CollectableKind, sprite string, points int) *component.Collectable {
	return &component.Collectable{Kind: kind, Sprite: sprite, Points: points}
}

// Reset возвращает игрока в стартовую клетку, обнуляет счёт и снимает флаг
// окончания игры. Рекорд сохраняется.
func (w *World) Reset() {
	w.Player.X, w.Player.Y = w.Dims.ToPixel(StartCell())
	w.Score.Value = 0
	w.GameOver = false
}

// StartCell — клетка, в которой игрок начинает каждый забег
func StartCell() grid.Cell {
	return grid.Cell{Col: config.PlayerStartCol, Row: config.PlayerStartRow}
}

// PlayerCell возвращает клетку, в которой стоит игрок
func (w *World) PlayerCell() grid.Cell {
	return w.Dims.CellAt(w.Player.X, w.Player.Y)
}

// EnemySpeed выбирает одну из четырёх дискретных скоростей врага
func EnemySpeed(rng *utils.PRNGService) float64 {
	return config.EnemySpeedStep * float64(rng.IntRange(config.EnemySpeedMin, config.EnemySpeedMax))
}
