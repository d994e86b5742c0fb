package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	maxWaitDuration = 10 * time.Second

	screenWidth  = 80
	screenHeight = 25
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Screen tcell.SimulationScreen
}

// New - returns a context bound to the test and a Suite holding an in-memory
// screen. The screen is not initialized; whoever wraps it calls Init and Fini.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Screen: tcell.NewSimulationScreen(""),
	}
}

// Resize - sets the simulated terminal to the default size. Call after Init.
func (that *Suite) Resize() {
	that.Screen.SetSize(screenWidth, screenHeight)
}

// Press - queues keystrokes the way a user would type them.
func (that *Suite) Press(keys ...tcell.Key) {
	for _, key := range keys {
		that.Screen.InjectKey(key, 0, tcell.ModNone)
	}
}

// Type - queues printable characters.
func (that *Suite) Type(text string) {
	for _, r := range text {
		that.Screen.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}

// Line - returns the characters shown on row, trailing blanks removed.
func (that *Suite) Line(row int) string {
	width, _ := that.Screen.Size()

	runes := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		r, _, _, _ := that.Screen.GetContent(x, row)
		if r == 0 {
			r = ' '
		}
		runes = append(runes, r)
	}

	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}

	return string(runes[:end])
}
