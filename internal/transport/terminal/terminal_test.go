package terminal

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/testing/suite"
)

func newTestTerminal(st *suite.Suite) *Terminal {
	st.Helper()

	term, err := New(st.Logger, st.Screen)
	require.NoError(st, err)
	st.Resize()

	return term
}

func TestTerminal_WriteText(t *testing.T) {
	t.Run("Text lands at the given row and column", func(t *testing.T) {
		_, st := suite.New(t)
		term := newTestTerminal(st)
		t.Cleanup(term.Close)

		// When: tiles are written on two rows
		term.WriteText(0, 0, " X ")
		term.WriteText(0, 3, "[O]")
		term.WriteText(2, 6, " - ")
		term.Show()

		// Then: the screen shows them where expected
		assert.Equal(t, " X [O]", st.Line(0))
		assert.Equal(t, "", st.Line(1))
		assert.Equal(t, "       -", st.Line(2))
	})

	t.Run("Clear wipes the screen", func(t *testing.T) {
		_, st := suite.New(t)
		term := newTestTerminal(st)
		t.Cleanup(term.Close)

		term.WriteText(1, 1, "menu")
		term.Clear()
		term.Show()

		assert.Equal(t, "", st.Line(1))
	})

	t.Run("Text past the right edge is dropped", func(t *testing.T) {
		_, st := suite.New(t)
		term := newTestTerminal(st)
		t.Cleanup(term.Close)

		width, _ := st.Screen.Size()
		assert.NotPanics(t, func() {
			term.WriteText(0, width-2, "overflow")
		})
		assert.Equal(t, "ov", st.Line(0)[width-2:])
	})
}

func TestTerminal_ReadKey(t *testing.T) {
	t.Run("Maps keys to game input", func(t *testing.T) {
		tests := []struct {
			name     string
			key      tcell.Key
			r        rune
			expected entity.Key
		}{
			{"arrow up", tcell.KeyUp, 0, entity.KeyUp},
			{"arrow down", tcell.KeyDown, 0, entity.KeyDown},
			{"arrow left", tcell.KeyLeft, 0, entity.KeyLeft},
			{"arrow right", tcell.KeyRight, 0, entity.KeyRight},
			{"space", tcell.KeyRune, ' ', entity.KeySelect},
			{"q", tcell.KeyRune, 'q', entity.KeyQuit},
			{"n", tcell.KeyRune, 'n', entity.KeyNewGame},
			{"escape", tcell.KeyEscape, 0, entity.KeyQuit},
			{"ctrl-c", tcell.KeyCtrlC, 0, entity.KeyQuit},
			{"other letter", tcell.KeyRune, 'x', entity.KeyOther},
			{"enter", tcell.KeyEnter, 0, entity.KeyOther},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctx, st := suite.New(t)
				term := newTestTerminal(st)
				t.Cleanup(term.Close)

				// Given: a key is pressed
				st.Screen.InjectKey(tt.key, tt.r, tcell.ModNone)

				// When: the key is read
				key, err := term.ReadKey(ctx)

				// Then: it is translated to the game's key
				require.NoError(t, err)
				assert.Equal(t, tt.expected, key)
			})
		}
	})

	t.Run("Keys are read in the order they were typed", func(t *testing.T) {
		ctx, st := suite.New(t)
		term := newTestTerminal(st)
		t.Cleanup(term.Close)

		st.Type("n q")

		for _, expected := range []entity.Key{entity.KeyNewGame, entity.KeySelect, entity.KeyQuit} {
			key, err := term.ReadKey(ctx)
			require.NoError(t, err)
			assert.Equal(t, expected, key)
		}
	})

	t.Run("Interrupt reads as quit", func(t *testing.T) {
		ctx, st := suite.New(t)
		term := newTestTerminal(st)
		t.Cleanup(term.Close)

		// When: the terminal is interrupted
		term.Interrupt()
		key, err := term.ReadKey(ctx)

		// Then: the loop is told to quit
		require.NoError(t, err)
		assert.Equal(t, entity.KeyQuit, key)
	})

	t.Run("Canceled context reads as quit", func(t *testing.T) {
		_, st := suite.New(t)
		term := newTestTerminal(st)
		t.Cleanup(term.Close)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		key, err := term.ReadKey(ctx)

		require.NoError(t, err)
		assert.Equal(t, entity.KeyQuit, key)
	})

	t.Run("Closed screen returns ErrInputClosed", func(t *testing.T) {
		ctx, st := suite.New(t)
		term := newTestTerminal(st)

		// Given: the screen has been finalized
		term.Close()

		// When: a key is read
		_, err := term.ReadKey(ctx)

		// Then: the input is reported closed
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})
}
