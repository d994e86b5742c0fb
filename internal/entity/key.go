package entity

// Key is an input event already decoded from the terminal.
type Key uint8

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySelect
	KeyQuit
	KeyNewGame
)

// Direction reports the cursor direction bound to a movement key.
func (that Key) Direction() (Direction, bool) {
	switch that {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	default:
		return 0, false
	}
}

func (that Key) String() string {
	switch that {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySelect:
		return "select"
	case KeyQuit:
		return "quit"
	case KeyNewGame:
		return "new-game"
	default:
		return "other"
	}
}
