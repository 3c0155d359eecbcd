package types

// Controls understood by the simulation; the web client sends them as-is.
const (
	ControlForward   = "forward"
	ControlBack      = "back"
	ControlTurnLeft  = "turnleft"
	ControlTurnRight = "turnright"
	ControlBork      = "bork"
)

// InputEvent is one decoded player input. Down carries the key edge: true
// on press, false on release. Bork is edge-triggered and only acts on
// press.
type InputEvent struct {
	Control string `json:"control"`
	Down    bool   `json:"down"`
}
