//go:build !windows

package console

// Unix terminals already speak UTF-8 and ANSI.
type platform struct {
	Noop
}
