package ui

import (
	"testing"

	"go-bug-run/internal/config"
	"go-bug-run/pkg/render"
)

func TestPlayAgainButtonHitTest(t *testing.T) {
	b := NewPlayAgainButton()
	if !b.Contains(250, 380) {
		t.Error("Expected the button centre to be clickable")
	}
	// Границы исключены
	for _, p := range [][2]float64{{160, 380}, {340, 380}, {250, 360}, {250, 400}, {100, 100}} {
		if b.Contains(p[0], p[1]) {
			t.Errorf("Expected (%v, %v) to miss the button", p[0], p[1])
		}
	}
}

func TestScoreIndicatorText(t *testing.T) {
	f := NewFormatter("en")
	if got := NewScoreIndicator(f).Text(5); got != "Score: 5" {
		t.Errorf("Expected 'Score: 5', got %q", got)
	}
	if got := NewHighScoreIndicator(f).Text(12345); got != "High Score: 12,345" {
		t.Errorf("Expected 'High Score: 12,345', got %q", got)
	}
}

func TestFormatterFallsBackToEnglish(t *testing.T) {
	f := NewFormatter("not a locale!")
	if got := f.Sprintf("%d", 1000); got != "1,000" {
		t.Errorf("Expected '1,000', got %q", got)
	}
}

func TestScoreIndicatorDraw(t *testing.T) {
	var rec render.Recorder
	NewHighScoreIndicator(NewFormatter("en")).Draw(&rec, 3)

	if len(rec.Ops) != 2 {
		t.Fatalf("Expected 2 ops, got %d", len(rec.Ops))
	}
	if rec.Ops[0].Kind != render.OpRect || rec.Ops[0].Rect != config.HighScoreBox {
		t.Errorf("Expected the high score box first, got %v", rec.Ops[0])
	}
	text := rec.Ops[1]
	if text.Key != "High Score: 3" || text.X != 505 || text.Y != 40 || text.Style.Align != render.AlignRight {
		t.Errorf("Unexpected text op %+v", text)
	}
}

func TestGameOverPanelDraw(t *testing.T) {
	var rec render.Recorder
	NewGameOverPanel(NewFormatter("en")).Draw(&rec, 9)

	want := []string{"Game Over!", "Oops! You touched the bug.", "Your score is 9", "Play Again"}
	got := rec.Texts()
	if len(got) != len(want) {
		t.Fatalf("Expected %d texts, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Text %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if rec.Ops[0].Rect != config.GameOverPanel {
		t.Errorf("Expected the panel background first, got %v", rec.Ops[0])
	}
}
