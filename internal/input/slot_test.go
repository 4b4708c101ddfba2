package input

import (
	"testing"

	"go-bug-run/internal/component"
)

func TestSlotLastWriterWins(t *testing.T) {
	var s Slot
	s.Set(component.DirectionUp)
	s.Set(component.DirectionLeft)
	if got := s.Peek(); got != component.DirectionLeft {
		t.Fatalf("Expected left, got %v", got)
	}
	if got := s.Take(); got != component.DirectionLeft {
		t.Fatalf("Expected left from Take, got %v", got)
	}
	if got := s.Take(); got != component.DirectionNone {
		t.Errorf("Expected the slot to be drained, got %v", got)
	}
}

func TestSlotClear(t *testing.T) {
	var s Slot
	s.Set(component.DirectionDown)
	s.Clear()
	if got := s.Take(); got != component.DirectionNone {
		t.Errorf("Expected none after Clear, got %v", got)
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]component.Direction{
		"left":  component.DirectionLeft,
		"Up":    component.DirectionUp,
		"RIGHT": component.DirectionRight,
		"down":  component.DirectionDown,
		"space": component.DirectionNone,
		"":      component.DirectionNone,
	}
	for token, want := range cases {
		if got := ParseDirection(token); got != want {
			t.Errorf("Expected %v for %q, got %v", want, token, got)
		}
	}
}
