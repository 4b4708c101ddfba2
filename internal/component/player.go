// internal/component/player.go
package component

// Player — сущность игрока. Двигается только по вводу, ровно на одну клетку.
type Player struct {
	Position
	Sprite string
}
