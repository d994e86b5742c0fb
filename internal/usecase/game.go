package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const (
	messageWin  = "WIN! :)"
	messageDraw = "Draw Game :|"
)

type GameUseCase interface {
	Play(ctx context.Context) (*entity.Session, error)
}

type keyboard interface {
	ReadKey(ctx context.Context) (entity.Key, error)
}

type renderService interface {
	DrawMenu()
	DrawBoard(session *entity.Session)
	DrawMessage(message string)
}

type soundService interface {
	PlayMove()
	PlayWin()
	PlayDraw()
}

type gameUseCase struct {
	logger *slog.Logger

	keyboard keyboard
	render   renderService
	sound    soundService
}

func NewGameUseCase(logger *slog.Logger, keyboard keyboard, render renderService, sound soundService) GameUseCase {
	return &gameUseCase{
		logger:   logger,
		keyboard: keyboard,
		render:   render,
		sound:    sound,
	}
}

// Play runs one session on a fresh board until it is won, drawn or quit.
func (that *gameUseCase) Play(ctx context.Context) (*entity.Session, error) {
	return that.play(ctx, entity.NewSession())
}

func (that *gameUseCase) play(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	log := that.logger.With("method", "Play", "session_id", session.ID)
	log.Info("session started")

	for {
		that.render.DrawBoard(session)

		// The result is read at the cursor, not at the last placed mark, so a
		// finished line is only noticed once the cursor rests on it.
		if status := tictactoe.Evaluate(session.Board, session.Cursor); status != entity.StatusOngoing {
			session.Status = status
			log.Info("session finished", "status", session.Status, "winner", session.Winner().String(), "moves", session.Moves)

			return session, that.announce(ctx, session)
		}

		key, err := that.keyboard.ReadKey(ctx)
		if err != nil {
			session.Status = entity.StatusQuit
			return session, fmt.Errorf("failed to read key: %w", err)
		}

		if key == entity.KeyQuit {
			session.Status = entity.StatusQuit
			log.Info("session abandoned", "moves", session.Moves)

			return session, nil
		}

		that.dispatch(session, key)
	}
}

func (that *gameUseCase) dispatch(session *entity.Session, key entity.Key) {
	if direction, ok := key.Direction(); ok {
		session.Cursor = tictactoe.MoveCursor(session.Cursor, direction)
		return
	}

	if key != entity.KeySelect {
		return
	}

	board, turn := tictactoe.PlaceMark(session.Board, session.Cursor, session.Turn)
	if turn == session.Turn {
		that.logger.Debug("cell already taken", "session_id", session.ID, "cell", session.Cursor.Index())
		return
	}

	session.Board = board
	session.Turn = turn
	session.Moves++
	that.sound.PlayMove()
}

// announce shows the terminal message and waits for one key before returning.
func (that *gameUseCase) announce(ctx context.Context, session *entity.Session) error {
	if session.Status == entity.StatusWon {
		that.sound.PlayWin()
		that.render.DrawMessage(messageWin)
	} else {
		that.sound.PlayDraw()
		that.render.DrawMessage(messageDraw)
	}

	if _, err := that.keyboard.ReadKey(ctx); err != nil {
		return fmt.Errorf("failed to read acknowledgement: %w", err)
	}

	return nil
}
