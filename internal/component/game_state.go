package component

// Score — счёт текущего забега и рекорд за время работы процесса
type Score struct {
	Value int
	High  int
}

// RaiseHigh поднимает рекорд до текущего счёта, если счёт больше.
// Возвращает true, если рекорд изменился.
func (s *Score) RaiseHigh() bool {
	if s.Value > s.High {
		s.High = s.Value
		return true
	}
	return false
}
