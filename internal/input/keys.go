// internal/input/keys.go
package input

import (
	"strings"

	"go-bug-run/internal/component"
)

var tokens = map[string]component.Direction{
	"left":  component.DirectionLeft,
	"up":    component.DirectionUp,
	"right": component.DirectionRight,
	"down":  component.DirectionDown,
}

// ParseDirection переводит токен клавиши в направление.
// Неизвестные токены дают DirectionNone.
func ParseDirection(token string) component.Direction {
	if d, ok := tokens[strings.ToLower(token)]; ok {
		return d
	}
	return component.DirectionNone
}
