// internal/input/slot.go
package input

import "go-bug-run/internal/component"

// Slot — ячейка на одно направление. Обработчик ввода перезаписывает её,
// цикл забирает значение в начале следующего тика. Побеждает последний
// записавший: несколько нажатий за один кадр сливаются в одно.
type Slot struct {
	pending component.Direction
}

// Set запоминает направление, затирая предыдущее
func (s *Slot) Set(d component.Direction) {
	s.pending = d
}

// Take возвращает накопленное направление и очищает ячейку
func (s *Slot) Take() component.Direction {
	d := s.pending
	s.pending = component.DirectionNone
	return d
}

// Peek возвращает накопленное направление без очистки
func (s *Slot) Peek() component.Direction {
	return s.pending
}

// Clear сбрасывает ячейку
func (s *Slot) Clear() {
	s.pending = component.DirectionNone
}
