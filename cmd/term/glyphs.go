// cmd/term/glyphs.go
package main

import (
	"image/color"

	"go-bug-run/internal/config"
	"go-bug-run/pkg/render/termsurface"
)

// Текстовые спрайты: плитки задают только фон, сущности рисуются символами
var glyphs = map[string]termsurface.Glyph{
	config.SpriteGrass:  {Bg: color.RGBA{60, 160, 60, 255}},
	config.SpriteStone:  {Bg: color.RGBA{120, 120, 120, 255}},
	config.SpriteWater:  {Bg: color.RGBA{40, 90, 200, 255}},
	config.SpriteEnemy:  {Text: "=B>", Fg: color.RGBA{220, 30, 30, 255}},
	config.SpritePlayer: {Text: "@", Fg: color.RGBA{255, 255, 255, 255}},
	config.SpriteStar:   {Text: "*", Fg: color.RGBA{255, 220, 0, 255}},
	config.SpriteKey:    {Text: "k", Fg: color.RGBA{255, 170, 0, 255}},
}
