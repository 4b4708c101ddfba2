// internal/system/render.go
package system

import (
	"go-bug-run/internal/config"
	"go-bug-run/internal/entity"
	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

// RenderSystem рисует фон и сущности
type RenderSystem struct {
	world     *entity.World
	rowImages []string
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world, rowImages: config.RowImages}
}

// Draw рисует в фиксированном порядке: плитки фона, враги, предметы, игрок
func (s *RenderSystem) Draw(surface render.Surface) {
	s.drawTiles(surface)

	for _, enemy := range s.world.Enemies {
		surface.DrawSprite(enemy.Sprite, enemy.X, enemy.Y)
	}
	for _, c := range s.world.Collectables {
		surface.DrawSprite(c.Sprite, c.X, c.Y)
	}
	p := s.world.Player
	surface.DrawSprite(p.Sprite, p.X, p.Y)
}

func (s *RenderSystem) drawTiles(surface render.Surface) {
	dims := s.world.Dims
	for row := 0; row < dims.Rows() && row < len(s.rowImages); row++ {
		for col := 0; col < dims.Cols(); col++ {
			x, y := dims.ToPixel(grid.Cell{Col: col, Row: row})
			surface.DrawSprite(s.rowImages[row], x, y)
		}
	}
}
