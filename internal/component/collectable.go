// internal/component/collectable.go
package component

// CollectableKind — вид предмета. Виды отличаются только очками и спрайтом.
type CollectableKind int

const (
	KindStar CollectableKind = iota
	KindKey
)

func (k CollectableKind) String() string {
	switch k {
	case KindStar:
		return "star"
	case KindKey:
		return "key"
	}
	return "unknown"
}

// Collectable — предмет, который игрок подбирает ради очков
type Collectable struct {
	Position
	Kind   CollectableKind
	Sprite string
	Points int
}
