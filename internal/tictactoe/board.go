// Package tictactoe holds the rules of the game: cursor movement, mark placement,
// and win and draw detection on a 3x3 board.
package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

var (
	rowTop    = entity.Line{0, 1, 2}
	rowMiddle = entity.Line{3, 4, 5}
	rowBottom = entity.Line{6, 7, 8}
	colLeft   = entity.Line{0, 3, 6}
	colMiddle = entity.Line{1, 4, 7}
	colRight  = entity.Line{2, 5, 8}
	diagMain  = entity.Line{0, 4, 8}
	diagAnti  = entity.Line{2, 4, 6}

	winLines = [...]entity.Line{
		rowTop, rowMiddle, rowBottom,
		colLeft, colMiddle, colRight,
		diagMain, diagAnti,
	}

	// linesThrough maps a board index to every line passing through it.
	linesThrough = buildLinesThrough()
)

func buildLinesThrough() [entity.BoardSize][]entity.Line {
	var table [entity.BoardSize][]entity.Line

	for _, line := range winLines {
		for _, index := range line {
			table[index] = append(table[index], line)
		}
	}

	return table
}

// Lines returns the eight winning lines.
func Lines() []entity.Line {
	lines := winLines
	return lines[:]
}

// LinesThrough returns the lines passing through position: three for a corner,
// two for an edge and four for the center.
func LinesThrough(position entity.Position) []entity.Line {
	if !position.IsValid() {
		return nil
	}

	through := linesThrough[position.Index()]
	return append([]entity.Line(nil), through...)
}

// MoveCursor returns the position one step in direction, clamped to the grid.
func MoveCursor(position entity.Position, direction entity.Direction) entity.Position {
	switch direction {
	case entity.Up:
		if position.Row > entity.BorderMin {
			position.Row--
		}
	case entity.Down:
		if position.Row < entity.BorderMax {
			position.Row++
		}
	case entity.Left:
		if position.Col > entity.BorderMin {
			position.Col--
		}
	case entity.Right:
		if position.Col < entity.BorderMax {
			position.Col++
		}
	}

	return position
}

// PlaceMark puts turn's mark at position and returns the next turn.
// An occupied cell leaves both the board and the turn unchanged.
func PlaceMark(board entity.Board, position entity.Position, turn entity.Cell) (entity.Board, entity.Cell) {
	if !position.IsValid() {
		return board, turn
	}

	index := position.Index()
	if !board[index].IsEmpty() {
		return board, turn
	}

	board[index] = turn

	return board, turn.Opponent()
}

// CheckWin reports whether any line through position holds three identical marks.
func CheckWin(board entity.Board, position entity.Position) bool {
	if !position.IsValid() {
		return false
	}

	for _, line := range linesThrough[position.Index()] {
		if isWinningLine(board, line) {
			return true
		}
	}

	return false
}

func isWinningLine(board entity.Board, line entity.Line) bool {
	a, b, c := board[line[0]], board[line[1]], board[line[2]]
	return !a.IsEmpty() && a == b && b == c
}

// CheckDraw reports whether every cell is taken.
func CheckDraw(board entity.Board) bool {
	for _, cell := range board {
		if cell.IsEmpty() {
			return false
		}
	}

	return true
}

// Evaluate returns the session status for board as seen from position.
// A win takes precedence over a full board.
func Evaluate(board entity.Board, position entity.Position) string {
	switch {
	case CheckWin(board, position):
		return entity.StatusWon
	case CheckDraw(board):
		return entity.StatusDrawn
	default:
		return entity.StatusOngoing
	}
}
