// internal/system/movement.go
package system

import (
	"go-bug-run/internal/config"
	"go-bug-run/internal/entity"
	"go-bug-run/internal/utils"
)

// MovementSystem двигает врагов по их полосам
type MovementSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewMovementSystem(world *entity.World, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{world: world, rng: rng}
}

// Update сдвигает каждого врага на speed*deltaTime. Враг, ушедший за правый
// край, возвращается в x = 0 с новой случайной скоростью. deltaTime не
// ограничивается: после долгой паузы враг может проскочить далеко вперёд.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, enemy := range s.world.Enemies {
		enemy.X += enemy.Speed * deltaTime
		if enemy.X > config.EnemyRightBound {
			enemy.X = 0
			enemy.Speed = entity.EnemySpeed(s.rng)
		}
	}
}
