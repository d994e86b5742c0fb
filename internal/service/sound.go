package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
)

const (
	moveToneHz = 660
	winToneHz  = 880
	drawToneHz = 330

	speakerBuffer = time.Second / 10
)

// SoundService plays short cues for game events.
type SoundService interface {
	PlayMove()
	PlayWin()
	PlayDraw()
	Close()
}

type silentSound struct{}

// NewSilentSoundService returns a SoundService that plays nothing.
func NewSilentSoundService() SoundService {
	return silentSound{}
}

func (silentSound) PlayMove() {}
func (silentSound) PlayWin()  {}
func (silentSound) PlayDraw() {}
func (silentSound) Close()    {}

type beepSound struct {
	logger *slog.Logger

	sampleRate beep.SampleRate
	duration   time.Duration
}

// NewSoundService opens the speaker when audio is enabled. Audio is optional,
// so any failure degrades to the silent service.
func NewSoundService(logger *slog.Logger, conf config.Audio) SoundService {
	log := logger.With("component", "sound")

	if !conf.Enabled {
		return NewSilentSoundService()
	}

	sampleRate := beep.SampleRate(conf.SampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBuffer)); err != nil {
		log.Warn("audio disabled", "error", fmt.Errorf("%w: %w", apperror.ErrAudioInit, err))
		return NewSilentSoundService()
	}

	return &beepSound{
		logger:     log,
		sampleRate: sampleRate,
		duration:   time.Duration(conf.ToneMs) * time.Millisecond,
	}
}

func (that *beepSound) PlayMove() {
	that.play(moveToneHz)
}

func (that *beepSound) PlayWin() {
	that.play(winToneHz)
}

func (that *beepSound) PlayDraw() {
	that.play(drawToneHz)
}

func (that *beepSound) Close() {
	speaker.Close()
}

func (that *beepSound) play(frequency float64) {
	tone, err := newTone(that.sampleRate, frequency, that.duration)
	if err != nil {
		that.logger.Error("could not build tone", "frequency", frequency, "error", err)
		return
	}

	speaker.Play(tone)
}

// newTone returns a sine wave of the given frequency cut to duration.
func newTone(sampleRate beep.SampleRate, frequency float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to generate sine tone: %w", err)
	}

	return beep.Take(sampleRate.N(duration), sine), nil
}
