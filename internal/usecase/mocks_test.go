package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type mockKeyboard struct {
	mock.Mock
}

func newMockKeyboard(t *testing.T) *mockKeyboard {
	m := &mockKeyboard{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Press queues keys to be returned by ReadKey in order.
func (that *mockKeyboard) Press(keys ...entity.Key) *mockKeyboard {
	for _, key := range keys {
		that.On("ReadKey", mock.Anything).Return(key, nil).Once()
	}
	return that
}

func (that *mockKeyboard) ReadKey(ctx context.Context) (entity.Key, error) {
	args := that.Called(ctx)
	return args.Get(0).(entity.Key), args.Error(1)
}

type mockRender struct {
	mock.Mock
}

func newMockRender(t *testing.T) *mockRender {
	m := &mockRender{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (that *mockRender) DrawMenu() {
	that.Called()
}

func (that *mockRender) DrawBoard(session *entity.Session) {
	that.Called(session)
}

func (that *mockRender) DrawMessage(message string) {
	that.Called(message)
}

type mockSound struct {
	mock.Mock
}

func newMockSound(t *testing.T) *mockSound {
	m := &mockSound{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (that *mockSound) PlayMove() {
	that.Called()
}

func (that *mockSound) PlayWin() {
	that.Called()
}

func (that *mockSound) PlayDraw() {
	that.Called()
}

type mockGame struct {
	mock.Mock
}

func newMockGame(t *testing.T) *mockGame {
	m := &mockGame{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (that *mockGame) Play(ctx context.Context) (*entity.Session, error) {
	args := that.Called(ctx)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}
