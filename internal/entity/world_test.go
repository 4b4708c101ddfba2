package entity

import (
	"testing"

	"go-bug-run/internal/config"
	"go-bug-run/internal/utils"
)

func newTestWorld() *World {
	return NewWorld(utils.NewPRNGService(1), Points{Star: config.StarPoints, Key: config.KeyPoints})
}

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld()

	if w.Player.X != 202 || w.Player.Y != 415 {
		t.Errorf("Expected player at (202, 415), got (%v, %v)", w.Player.X, w.Player.Y)
	}
	if len(w.Enemies) != 3 {
		t.Fatalf("Expected 3 enemies, got %d", len(w.Enemies))
	}
	for i, e := range w.Enemies {
		if e.X != 0 || e.Y != config.EnemyLanes[i] {
			t.Errorf("Enemy %d: expected (0, %v), got (%v, %v)", i, config.EnemyLanes[i], e.X, e.Y)
		}
		if !validSpeed(e.Speed) {
			t.Errorf("Enemy %d: unexpected speed %v", i, e.Speed)
		}
	}
	if len(w.Collectables) != 2 {
		t.Fatalf("Expected 2 collectables, got %d", len(w.Collectables))
	}
	if w.Collectables[0].Points != 5 || w.Collectables[1].Points != 2 {
		t.Errorf("Expected star=5 key=2, got %d/%d", w.Collectables[0].Points, w.Collectables[1].Points)
	}
	for _, c := range w.Collectables {
		cell := w.Dims.CellAt(c.X, c.Y)
		if cell.Col < 1 || cell.Col > 4 || cell.Row < 1 || cell.Row > 4 {
			t.Errorf("Collectable %v placed outside [1,4]: %v", c.Kind, cell)
		}
	}
	if w.GameOver || w.Score.Value != 0 || w.Score.High != 0 {
		t.Errorf("Expected a fresh score state, got %+v gameOver=%v", w.Score, w.GameOver)
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	w := newTestWorld()
	w.Player.X, w.Player.Y = 0, 0
	w.Score.Value = 12
	w.Score.High = 20
	w.GameOver = true

	w.Reset()

	if w.PlayerCell() != StartCell() {
		t.Errorf("Expected player at the start cell, got %v", w.PlayerCell())
	}
	if w.Score.Value != 0 {
		t.Errorf("Expected score 0, got %d", w.Score.Value)
	}
	if w.GameOver {
		t.Error("Expected game-over flag to be cleared")
	}
	if w.Score.High != 20 {
		t.Errorf("Expected high score 20 to survive reset, got %d", w.Score.High)
	}
}

func validSpeed(v float64) bool {
	return v == 50 || v == 100 || v == 150 || v == 200
}
