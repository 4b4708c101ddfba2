// internal/system/player_system.go
package system

import (
	"go-bug-run/internal/component"
	"go-bug-run/internal/entity"
	"go-bug-run/pkg/grid"
)

// PlayerSystem отвечает за перемещение игрока по сетке.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

var directionSteps = map[component.Direction]grid.Cell{
	component.DirectionUp:    {Col: 0, Row: -1},
	component.DirectionDown:  {Col: 0, Row: 1},
	component.DirectionLeft:  {Col: -1, Row: 0},
	component.DirectionRight: {Col: 1, Row: 0},
}

// Move сдвигает игрока на одну клетку, если клетка назначения внутри сетки.
// Возвращает true, если игрок сдвинулся. Флаг окончания игры здесь не
// проверяется: ввод отсекается раньше, на входе в игру.
func (s *PlayerSystem) Move(dir component.Direction) bool {
	step, ok := directionSteps[dir]
	if !ok {
		return false
	}
	cell := s.world.PlayerCell()
	target := grid.Cell{Col: cell.Col + step.Col, Row: cell.Row + step.Row}
	if !s.world.Dims.Contains(target) {
		return false
	}
	s.world.Player.X, s.world.Player.Y = s.world.Dims.ToPixel(target)
	return true
}
