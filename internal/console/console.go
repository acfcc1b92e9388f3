// Package console prepares the host terminal for UTF-8 text and ANSI
// escape sequences.
package console

// Initializer sets up the console for the show. The returned restore
// function undoes the setup and is never nil, even on error.
type Initializer interface {
	Init() (restore func(), err error)
}

// Noop is an Initializer for outputs that need no setup.
type Noop struct{}

// Init implements Initializer.
func (Noop) Init() (func(), error) {
	return func() {}, nil
}

// New returns the Initializer for the current platform.
func New() Initializer {
	return platform{}
}
