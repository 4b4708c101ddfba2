// internal/event/types.go
package event

const (
	PlayerHit       EventType = "PlayerHit"       // Игрок столкнулся с жуком, игра окончена
	ItemCollected   EventType = "ItemCollected"   // Подобран предмет
	HighScoreRaised EventType = "HighScoreRaised" // Рекорд обновлён
	GameReset       EventType = "GameReset"       // Новый забег
)

// ItemCollectedData — данные события ItemCollected
type ItemCollectedData struct {
	Kind   string
	Points int
	Score  int
}

// ScoreData — данные событий PlayerHit, HighScoreRaised и GameReset
type ScoreData struct {
	Score     int
	HighScore int
}
