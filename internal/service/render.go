package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	tileWidth = 3

	statusRow = 0
	statusCol = 10

	messageRow = 1
	messageCol = 10

	helpRow = 4
	helpCol = 0

	menuTitle    = "~ Tic Tac Toe ~ A Go implementation ~"
	menuNewGame  = "`n` to play"
	menuQuit     = "`q` to quit"
	sessionHints = "arrows move, space places, q quits"
)

// Display is a character grid the game draws on.
type Display interface {
	Clear()
	WriteText(row, col int, text string)
	MoveCaret(row, col int)
	Show()
}

type RenderService interface {
	DrawMenu()
	DrawBoard(session *entity.Session)
	DrawMessage(message string)
}

type renderService struct {
	display Display
}

func NewRenderService(display Display) RenderService {
	return &renderService{
		display: display,
	}
}

func (that *renderService) DrawMenu() {
	that.display.Clear()
	that.display.WriteText(1, 1, menuTitle)
	that.display.WriteText(3, 1, menuNewGame)
	that.display.WriteText(4, 1, menuQuit)
	that.display.MoveCaret(6, 0)
	that.display.Show()
}

// DrawBoard redraws every tile, bracketing the one under the cursor.
func (that *renderService) DrawBoard(session *entity.Session) {
	that.display.Clear()

	for index, cell := range session.Board {
		position := entity.PositionFromIndex(index)
		that.display.WriteText(position.Row, position.Col*tileWidth, Tile(cell, position == session.Cursor))
	}

	that.display.WriteText(statusRow, statusCol, fmt.Sprintf("Turn: %s", session.Turn))
	that.display.WriteText(helpRow, helpCol, sessionHints)
	that.display.MoveCaret(session.Cursor.Row, session.Cursor.Col*tileWidth+1)
	that.display.Show()
}

// DrawMessage writes a terminal message over the current frame.
func (that *renderService) DrawMessage(message string) {
	that.display.WriteText(messageRow, messageCol, message)
	that.display.MoveCaret(helpRow, 1)
	that.display.Show()
}

// Tile returns the three characters drawn for a cell.
func Tile(cell entity.Cell, selected bool) string {
	if selected {
		return "[" + cell.String() + "]"
	}
	return " " + cell.String() + " "
}
