// internal/assets/placeholders.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"go-bug-run/internal/config"
	"go-bug-run/pkg/render"
)

// Размер заглушки совпадает с размером оригинальных спрайтов
const (
	SpriteWidth  = 101
	SpriteHeight = 171
)

// ErrUnknownSprite возвращается для ключа, для которого нет заглушки
var ErrUnknownSprite = errors.New("unknown sprite")

var palette = struct {
	Grass  color.RGBA
	Stone  color.RGBA
	Water  color.RGBA
	Bug    color.RGBA
	BugEye color.RGBA
	Skin   color.RGBA
	Shirt  color.RGBA
	Star   color.RGBA
	Key    color.RGBA
}{
	Grass:  color.RGBA{90, 170, 70, 255},
	Stone:  color.RGBA{150, 150, 150, 255},
	Water:  color.RGBA{60, 120, 220, 255},
	Bug:    color.RGBA{210, 40, 40, 255},
	BugEye: color.RGBA{20, 20, 20, 255},
	Skin:   color.RGBA{240, 200, 160, 255},
	Shirt:  color.RGBA{40, 90, 200, 255},
	Star:   color.RGBA{255, 215, 0, 255},
	Key:    color.RGBA{200, 160, 40, 255},
}

// Placeholder рисует простой спрайт для известного ключа.
func Placeholder(key string) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, SpriteWidth, SpriteHeight))
	switch key {
	case config.SpriteGrass:
		drawBlock(img, palette.Grass)
	case config.SpriteStone:
		drawBlock(img, palette.Stone)
	case config.SpriteWater:
		drawBlock(img, palette.Water)
	case config.SpriteEnemy:
		fillEllipse(img, 50, 112, 46, 24, palette.Bug)
		fillEllipse(img, 86, 106, 6, 6, palette.BugEye)
	case config.SpritePlayer:
		fillEllipse(img, 50, 92, 17, 17, palette.Skin)
		fillRect(img, 34, 108, 67, 140, palette.Shirt)
	case config.SpriteStar:
		fillDiamond(img, 50, 112, 30, palette.Star)
	case config.SpriteKey:
		fillEllipse(img, 50, 96, 14, 14, palette.Key)
		fillEllipse(img, 50, 96, 6, 6, color.RGBA{})
		fillRect(img, 46, 108, 55, 146, palette.Key)
		fillRect(img, 55, 132, 64, 138, palette.Key)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSprite, key)
	}
	return img, nil
}

// drawBlock рисует плитку: верхняя грань и более тёмная боковая сторона
func drawBlock(img *image.RGBA, top color.RGBA) {
	fillRect(img, 0, 50, SpriteWidth, SpriteHeight-20, render.DarkenColor(top))
	fillRect(img, 0, 50, SpriteWidth, 133, top)
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), &image.Uniform{c}, image.Point{}, draw.Src)
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillDiamond(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if abs(x-cx)+abs(y-cy) <= r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
