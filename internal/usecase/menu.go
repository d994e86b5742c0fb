package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type MenuUseCase interface {
	Run(ctx context.Context) error
}

type menuUseCase struct {
	logger *slog.Logger

	keyboard keyboard
	render   renderService
	game     GameUseCase
}

func NewMenuUseCase(logger *slog.Logger, keyboard keyboard, render renderService, game GameUseCase) MenuUseCase {
	return &menuUseCase{
		logger:   logger,
		keyboard: keyboard,
		render:   render,
		game:     game,
	}
}

// Run shows the menu until the player quits. Every "new game" starts a
// fresh session; nothing carries over between sessions.
func (that *menuUseCase) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	for {
		that.render.DrawMenu()

		key, err := that.keyboard.ReadKey(ctx)
		if err != nil {
			return fmt.Errorf("failed to read menu key: %w", err)
		}

		switch key {
		case entity.KeyNewGame:
			session, err := that.game.Play(ctx)
			if err != nil {
				return fmt.Errorf("game session failed: %w", err)
			}

			log.Debug("back to menu", "session_id", session.ID, "status", session.Status)
		case entity.KeyQuit:
			log.Info("quit from menu")
			return nil
		}
	}
}
