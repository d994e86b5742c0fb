package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/service"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/transport/terminal"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	screen, err := terminal.NewScreen()
	if err != nil {
		return fmt.Errorf("could not open terminal: %w", err)
	}

	term, err := terminal.New(logger, screen)
	if err != nil {
		return fmt.Errorf("could not start terminal: %w", err)
	}
	defer term.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
			term.Interrupt()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, term)
}

// Run - plays on an already started terminal until the player quits from the menu.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, term *terminal.Terminal) error {
	log := logger.With("component", "app")

	sound := service.NewSoundService(logger, conf.Audio)
	defer sound.Close()

	render := service.NewRenderService(term)
	game := usecase.NewGameUseCase(logger, term, render, sound)
	menu := usecase.NewMenuUseCase(logger, term, render, game)

	log.Info("Starting menu", "audio", conf.Audio.Enabled)

	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("menu stopped: %w", err)
	}

	log.Info("Bye")

	return nil
}
