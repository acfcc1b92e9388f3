// Package alert signals the start of every explosion.
package alert

import (
	"io"
	"sync"
)

// Emitter produces a short audible signal. Alert must not block the frame
// loop for longer than the signal itself and must never fail.
type Emitter interface {
	Alert()
}

// Noop is an Emitter that does nothing.
type Noop struct{}

// Alert implements Emitter.
func (Noop) Alert() {}

// bell rings the terminal bell once per tone.
const bell = "\a\a"

// Bell writes the terminal bell to W, for outputs that have no local
// speaker such as remote sessions. Write errors are ignored; the frame
// writer reports them.
type Bell struct {
	mu sync.Mutex
	W  io.Writer
}

// Alert implements Emitter.
func (b *Bell) Alert() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.W == nil {
		return
	}
	_, _ = io.WriteString(b.W, bell)
}

// Counter counts alerts. Useful when the signal itself is irrelevant.
type Counter struct {
	mu sync.Mutex
	n  int
}

// Alert implements Emitter.
func (c *Counter) Alert() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Count returns the number of alerts so far.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

var (
	_ Emitter = Noop{}
	_ Emitter = (*Bell)(nil)
	_ Emitter = (*Counter)(nil)
)
