package types

// GameDescriptionInterface exposes what the viz service needs to know
// about a running game without depending on the game itself.
type GameDescriptionInterface interface {
	GetId() string
	GetName() string
	GetTps() int
	GetArenaWidth() float64
	GetArenaHeight() float64
}
