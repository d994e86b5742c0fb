// Package terminal draws the game on a tcell screen and reads keys from it.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type Terminal struct {
	logger *slog.Logger
	screen tcell.Screen
	style  tcell.Style
}

// NewScreen - allocates a screen for the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrScreenInit, err)
	}

	return screen, nil
}

// New - initializes screen and wraps it as the game's display and keyboard.
func New(logger *slog.Logger, screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrScreenInit, err)
	}

	style := tcell.StyleDefault
	screen.SetStyle(style)
	screen.Clear()

	return &Terminal{
		logger: logger.With("component", "terminal"),
		screen: screen,
		style:  style,
	}, nil
}

func (that *Terminal) Clear() {
	that.screen.Clear()
}

// WriteText - puts text on row starting at col. Text past the right edge is dropped.
func (that *Terminal) WriteText(row, col int, text string) {
	width, _ := that.screen.Size()

	x := col
	for _, r := range text {
		if x >= width {
			return
		}
		that.screen.SetContent(x, row, r, nil, that.style)
		x++
	}
}

func (that *Terminal) MoveCaret(row, col int) {
	that.screen.ShowCursor(col, row)
}

func (that *Terminal) Show() {
	that.screen.Show()
}

// ReadKey - blocks until a key is pressed. A canceled context or an interrupt
// reads as Quit so that every loop unwinds the same way the quit key does.
func (that *Terminal) ReadKey(ctx context.Context) (entity.Key, error) {
	for {
		if ctx.Err() != nil {
			return entity.KeyQuit, nil
		}

		switch ev := that.screen.PollEvent().(type) {
		case nil:
			return entity.KeyOther, apperror.ErrInputClosed
		case *tcell.EventKey:
			key := translateKey(ev)
			that.logger.Debug("key pressed", "key", key.String(), "name", ev.Name())

			return key, nil
		case *tcell.EventInterrupt:
			return entity.KeyQuit, nil
		case *tcell.EventResize:
			that.screen.Sync()
		}
	}
}

// Interrupt - wakes up a blocked ReadKey.
func (that *Terminal) Interrupt() {
	if err := that.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		that.logger.Error("could not post interrupt", "error", err)
	}
}

// Close - restores the terminal.
func (that *Terminal) Close() {
	that.screen.Fini()
}

func translateKey(ev *tcell.EventKey) entity.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return entity.KeyUp
	case tcell.KeyDown:
		return entity.KeyDown
	case tcell.KeyLeft:
		return entity.KeyLeft
	case tcell.KeyRight:
		return entity.KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return entity.KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return entity.KeySelect
		case 'q':
			return entity.KeyQuit
		case 'n':
			return entity.KeyNewGame
		}
	}

	return entity.KeyOther
}
