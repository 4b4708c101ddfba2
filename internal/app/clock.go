// internal/app/clock.go
package app

import "time"

// Clock считает реальное время между тиками. Дельта не ограничивается
// и пропущенные кадры не догоняются.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock создаёт часы. nil означает time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start запоминает момент старта цикла
func (c *Clock) Start() {
	c.last = c.now()
}

// Tick возвращает секунды с предыдущего тика и сдвигает отметку
func (c *Clock) Tick() float64 {
	now := c.now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}
