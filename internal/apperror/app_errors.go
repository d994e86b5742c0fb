package apperror

import "errors"

var (
	ErrScreenInit  = errors.New("terminal screen could not be initialized")
	ErrInputClosed = errors.New("input source is closed")
	ErrAudioInit   = errors.New("audio device could not be initialized")
	ErrConfigLoad  = errors.New("unable to load config")
)
