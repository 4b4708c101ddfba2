// Package ebitensurface реализует render.Surface поверх ebiten.
package ebitensurface

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"go-bug-run/pkg/grid"
	"go-bug-run/pkg/render"
)

// ImageSource — кэш декодированных изображений
type ImageSource interface {
	Get(key string) (image.Image, bool)
}

// Surface рисует на *ebiten.Image. Изображения из кэша переводятся в
// текстуры при первом использовании и дальше переиспользуются.
type Surface struct {
	dst      *ebiten.Image
	images   ImageSource
	textures map[string]*ebiten.Image
	font     *text.GoTextFaceSource
	faces    map[float64]*text.GoTextFace
}

// New создаёт поверхность и загружает встроенный шрифт Go Regular.
func New(images ImageSource) (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Surface{
		images:   images,
		textures: make(map[string]*ebiten.Image),
		font:     src,
		faces:    make(map[float64]*text.GoTextFace),
	}, nil
}

// SetTarget задаёт изображение, на котором рисуется текущий кадр
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) DrawSprite(key string, x, y float64) {
	tex := s.texture(key)
	if tex == nil || s.dst == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(tex, op)
}

func (s *Surface) FillRect(r grid.Rect, c color.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawText рисует строку так, что y — это базовая линия
func (s *Surface) DrawText(str string, x, y float64, style render.TextStyle) {
	if s.dst == nil {
		return
	}
	face := s.face(style.Size)
	op := &text.DrawOptions{}
	op.PrimaryAlign = PrimaryAlign(style.Align)
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	if style.Color != nil {
		op.ColorScale.ScaleWithColor(style.Color)
	}
	text.Draw(s.dst, str, face, op)
}

func (s *Surface) texture(key string) *ebiten.Image {
	if tex, ok := s.textures[key]; ok {
		return tex
	}
	img, ok := s.images.Get(key)
	if !ok {
		return nil // Ещё не загружено: пропускаем кадр
	}
	tex := ebiten.NewImageFromImage(img)
	s.textures[key] = tex
	return tex
}

func (s *Surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.font, Size: size}
	s.faces[size] = f
	return f
}

// PrimaryAlign переводит выравнивание в термины text/v2
func PrimaryAlign(a render.Align) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignRight:
		return text.AlignEnd
	}
	return text.AlignStart
}
