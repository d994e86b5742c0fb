package entity

import "github.com/google/uuid"

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDrawn   = "drawn"
	StatusQuit    = "quit"
)

// Session is the mutable state of one game, from "new game" to its end.
type Session struct {
	ID     string
	Board  Board
	Cursor Position
	Turn   Cell
	Status string
	Moves  int
}

func NewSession() *Session {
	return &Session{
		ID:     uuid.NewString(),
		Board:  Board{},
		Cursor: Center,
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Session) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Session) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDrawn
}

// Winner returns the mark that completed a line, or EmptyCell when nobody won.
// The winner is the player who moved last, so it is the opponent of Turn.
func (that *Session) Winner() Cell {
	if that.Status != StatusWon {
		return EmptyCell
	}
	return that.Turn.Opponent()
}
