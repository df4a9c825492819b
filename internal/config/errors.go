package config

import "github.com/standardbeagle/calltree/internal/callerr"

var errNoRoots = callerr.NewConfigError("roots", "", errEmptyRoots{})

type errEmptyRoots struct{}

func (errEmptyRoots) Error() string { return "at least one root symbol is required" }

func errUnknownBackend(backend string) error {
	return callerr.NewConfigError("backend", backend, errBackendChoice{})
}

type errBackendChoice struct{}

func (errBackendChoice) Error() string { return `backend must be "cscope" or "global"` }
