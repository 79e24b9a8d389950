package main

import (
	stderrors "errors"

	"github.com/odvcencio/buckle/pkg/errors"
)

const (
	exitRuntime = 1
	exitUsage   = 2
	exitConfig  = 3
	exitBackend = 4
)

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitRuntime
	}
	return e.code
}

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

// exitCodeForError prefers an explicit exit code, then falls back to the
// error's code.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	var coded interface{ ExitCode() int }
	if stderrors.As(err, &coded) {
		return coded.ExitCode()
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigLoad, errors.ErrCodeConfigParse, errors.ErrCodeConfigInvalid, errors.ErrCodeThemeParse:
		return exitConfig
	case errors.ErrCodeBackendInit:
		return exitBackend
	}
	return exitRuntime
}
