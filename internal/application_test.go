package application

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/testing/suite"
)

func newTestConfig() *config.Config {
	return &config.Config{
		LogLevel: "debug",
		Audio:    config.Audio{Enabled: false, SampleRate: 44100, ToneMs: 60},
	}
}

func TestRun(t *testing.T) {
	t.Run("Play a move, abandon the game and quit", func(t *testing.T) {
		ctx, st := suite.New(t)

		term, err := terminal.New(st.Logger, st.Screen)
		require.NoError(t, err)
		t.Cleanup(term.Close)
		st.Resize()

		// Given: the player starts a game, places X, quits the game and then the menu
		st.Type("n")
		st.Type(" ")
		st.Press(tcell.KeyLeft)
		st.Type("qq")

		// When: the application runs
		err = Run(ctx, st.Logger, newTestConfig(), term)

		// Then: it exits cleanly, leaving the menu on screen
		require.NoError(t, err)
		assert.Equal(t, " ~ Tic Tac Toe ~ A Go implementation ~", st.Line(1))
		assert.Equal(t, " `n` to play", st.Line(3))
		assert.Equal(t, " `q` to quit", st.Line(4))
	})

	t.Run("Canceled context exits from the menu", func(t *testing.T) {
		_, st := suite.New(t)

		term, err := terminal.New(st.Logger, st.Screen)
		require.NoError(t, err)
		t.Cleanup(term.Close)
		st.Resize()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err = Run(ctx, st.Logger, newTestConfig(), term)

		require.NoError(t, err)
		assert.Equal(t, " `q` to quit", st.Line(4))
	})

	t.Run("Closed input stops the application with an error", func(t *testing.T) {
		ctx, st := suite.New(t)

		term, err := terminal.New(st.Logger, st.Screen)
		require.NoError(t, err)
		st.Resize()
		term.Close()

		err = Run(ctx, st.Logger, newTestConfig(), term)

		require.Error(t, err)
	})
}
