package entity

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide

	// BorderMin and BorderMax bound both cursor coordinates.
	BorderMin = 0
	BorderMax = BoardSide - 1
)

// Cell is one slot of the board.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

// String returns the glyph drawn inside a tile.
func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "-"
	}
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Opponent returns the mark that plays after this one. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Board holds the nine cells in row-major order.
type Board [BoardSize]Cell

// Line is a row, column or diagonal given as three board indices.
type Line [3]int

// Position is a cursor location on the board, independent of its contents.
type Position struct {
	Row int
	Col int
}

// Center is where the cursor starts in every session.
var Center = Position{Row: 1, Col: 1}

func (that Position) Index() int {
	return that.Row*BoardSide + that.Col
}

func (that Position) IsValid() bool {
	return that.Row >= BorderMin && that.Row <= BorderMax &&
		that.Col >= BorderMin && that.Col <= BorderMax
}

func PositionFromIndex(index int) Position {
	return Position{Row: index / BoardSide, Col: index % BoardSide}
}

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (that Direction) String() string {
	switch that {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
