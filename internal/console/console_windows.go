//go:build windows

package console

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const utf8CodePage = 65001

// platform switches the console output to UTF-8 and enables virtual
// terminal processing so escape sequences are interpreted.
type platform struct{}

// Init implements Initializer.
func (platform) Init() (func(), error) {
	restore := func() {}

	prevCP, err := windows.GetConsoleOutputCP()
	if err != nil {
		return restore, fmt.Errorf("console: get output code page: %w", err)
	}
	if err := windows.SetConsoleOutputCP(utf8CodePage); err != nil {
		return restore, fmt.Errorf("console: set output code page: %w", err)
	}
	restore = func() { _ = windows.SetConsoleOutputCP(prevCP) }

	out := windows.Stdout
	var mode uint32
	if err := windows.GetConsoleMode(out, &mode); err != nil {
		// Redirected output has no console mode; UTF-8 is enough.
		return restore, nil
	}
	if err := windows.SetConsoleMode(out, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return restore, fmt.Errorf("console: enable virtual terminal: %w", err)
	}

	return func() {
		_ = windows.SetConsoleMode(out, mode)
		_ = windows.SetConsoleOutputCP(prevCP)
	}, nil
}
