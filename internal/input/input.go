// Package input reads the keypress that ends the show.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrClosed is returned when the input ends before Enter is pressed.
var ErrClosed = errors.New("input: stream closed")

// Stream delivers input bytes via a channel so that waits can be cancelled.
type Stream struct {
	ch   chan byte
	done chan struct{}
	err  error // Set before ch is closed
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				s.err = err
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reading goroutine once its pending read returns.
func (s *Stream) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// IsEnter reports whether b ends a line. Raw terminals, such as SSH
// sessions, send '\r'; cooked ones send '\n'.
func IsEnter(b byte) bool {
	return b == '\n' || b == '\r'
}

// WaitEnter discards input until Enter arrives, the input ends or ctx is done.
func (s *Stream) WaitEnter(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, ok := <-s.ch:
			if !ok {
				if s.err != nil && !errors.Is(s.err, io.EOF) {
					return fmt.Errorf("input: read: %w", s.err)
				}
				return ErrClosed
			}
			if IsEnter(b) {
				return nil
			}
		}
	}
}

// WaitEnter waits for a single Enter on r.
func WaitEnter(ctx context.Context, r io.Reader) error {
	s := StartStream(r)
	defer s.Stop()
	return s.WaitEnter(ctx)
}
