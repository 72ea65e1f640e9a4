package app

import "errors"

var (
	ErrUnknownDay = errors.New("app: no lesson for day")
	ErrSetup      = errors.New("app: setup failed")
)
