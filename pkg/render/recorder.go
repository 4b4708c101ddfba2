// pkg/render/recorder.go
package render

import (
	"fmt"
	"image/color"

	"go-bug-run/pkg/grid"
)

// OpKind — вид записанной операции рисования
type OpKind int

const (
	OpSprite OpKind = iota
	OpRect
	OpText
)

// Op — одна записанная операция
type Op struct {
	Kind  OpKind
	Key   string // Ключ спрайта или текст
	X, Y  float64
	Rect  grid.Rect
	Color color.Color
	Style TextStyle
}

func (o Op) String() string {
	switch o.Kind {
	case OpSprite:
		return fmt.Sprintf("sprite %s @%v,%v", o.Key, o.X, o.Y)
	case OpRect:
		return fmt.Sprintf("rect %v", o.Rect)
	default:
		return fmt.Sprintf("text %q @%v,%v", o.Key, o.X, o.Y)
	}
}

// Recorder — Surface, который ничего не рисует, а запоминает вызовы.
// Используется в тестах и для отладки порядка отрисовки.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) DrawSprite(key string, x, y float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSprite, Key: key, X: x, Y: y})
}

func (r *Recorder) FillRect(rect grid.Rect, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect, Color: c})
}

func (r *Recorder) DrawText(s string, x, y float64, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Key: s, X: x, Y: y, Style: style})
}

// Texts возвращает все нарисованные строки по порядку
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Key)
		}
	}
	return out
}

// Sprites возвращает ключи всех нарисованных спрайтов по порядку
func (r *Recorder) Sprites() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpSprite {
			out = append(out, op.Key)
		}
	}
	return out
}

// Reset очищает записанные операции
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
