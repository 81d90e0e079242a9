package store

import "errors"

var (
	ErrRunNotFound = errors.New("run not found")
	ErrNoRuns      = errors.New("no runs recorded yet")
)
