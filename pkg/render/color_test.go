package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	want := color.RGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestScaleColorClamps(t *testing.T) {
	got := ScaleColor(color.RGBA{200, 10, 0, 128}, 2)
	want := color.RGBA{255, 20, 0, 128}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var s Surface = &r
	s.DrawSprite("a.png", 1, 2)
	s.DrawText("hi", 3, 4, TextStyle{Size: 10})
	if len(r.Ops) != 2 {
		t.Fatalf("Expected 2 ops, got %d", len(r.Ops))
	}
	if r.Sprites()[0] != "a.png" || r.Texts()[0] != "hi" {
		t.Errorf("Unexpected ops %v", r.Ops)
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Errorf("Expected no ops after Reset, got %d", len(r.Ops))
	}
}
