// internal/config/config.go
package config

import (
	"image/color"

	"go-bug-run/pkg/grid"
)

const (
	ScreenWidth  = 505
	ScreenHeight = 606
	CellWidth    = 101
	CellHeight   = 83
	MaxCol       = 4
	MaxRow       = 5

	PlayerStartCol = 2
	PlayerStartRow = 5

	EnemyRightBound = 505.0 // За этой границей враг возвращается в x = 0
	EnemySpeedStep  = 50.0  // Скорость врага = шаг * уровень
	EnemySpeedMin   = 1
	EnemySpeedMax   = 4

	CollectableMinCell = 1 // Предметы появляются в столбцах/строках [1, 4]
	CollectableMaxCell = 4

	StarPoints = 5
	KeyPoints  = 2

	// Симметричный хитбокс врага: отступ с каждой стороны
	HitboxInsetX = 20.0
	HitboxInsetY = 25.0

	// Старый хитбокс: узкая полоса по x относительно врага
	LegacyHitboxLeft  = 30.0
	LegacyHitboxRight = 50.0

	DefaultTPS = 60
)

// Dims — размеры сетки, общие для всей игры
var Dims = grid.Dimensions{
	CellWidth:  CellWidth,
	CellHeight: CellHeight,
	MaxCol:     MaxCol,
	MaxRow:     MaxRow,
}

// EnemyLanes — координаты y трёх полос врагов (строки 1–3)
var EnemyLanes = []float64{75, 150, 225}

// Спрайты
const (
	SpriteGrass  = "images/grass-block.png"
	SpriteStone  = "images/stone-block.png"
	SpriteWater  = "images/water-block.png"
	SpriteEnemy  = "images/enemy-bug.png"
	SpritePlayer = "images/char-boy.png"
	SpriteStar   = "images/star.png"
	SpriteKey    = "images/key.png"
)

// RowImages — плитка фона для каждой строки сверху вниз
var RowImages = []string{
	SpriteGrass,
	SpriteStone,
	SpriteStone,
	SpriteStone,
	SpriteGrass,
	SpriteGrass,
}

// AllSprites — всё, что нужно загрузить до старта игры
var AllSprites = []string{
	SpriteStone,
	SpriteWater,
	SpriteGrass,
	SpriteEnemy,
	SpritePlayer,
	SpriteStar,
	SpriteKey,
}

// Разметка оверлеев
var (
	ScoreBox       = grid.Rect{X: 0, Y: 0, W: 200, H: 50}
	HighScoreBox   = grid.Rect{X: 205, Y: 0, W: 300, H: 50}
	GameOverPanel  = grid.Rect{X: 101, Y: 175, W: 300, H: 250}
	PlayAgainRect  = grid.Rect{X: 160, Y: 360, W: 180, H: 40}
	ScoreTextX     = 10.0
	HighScoreTextX = 505.0
	OverlayTextY   = 40.0
)

const (
	OverlayFontSize  = 28.0
	PanelFontSize    = 16.0
	ButtonFontSize   = 18.0
	GameOverTitleY   = 210.0
	GameOverSubY     = 260.0
	GameOverScoreY   = 320.0
	PlayAgainTextY   = 385.0
	GameOverTitle    = "Game Over!"
	GameOverSubtitle = "Oops! You touched the bug."
	PlayAgainLabel   = "Play Again"
)

var (
	OverlayBgColor    = color.RGBA{255, 255, 255, 255}
	OverlayTextColor  = color.RGBA{0, 0, 0, 255}
	GameOverTextColor = color.RGBA{255, 0, 0, 255}
	ButtonColor       = color.RGBA{0, 128, 0, 255}
	ButtonTextColor   = color.RGBA{255, 255, 255, 255}
	BackgroundColor   = color.RGBA{255, 255, 255, 255}
)
