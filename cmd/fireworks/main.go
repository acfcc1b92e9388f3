package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/tomz197/fireworks/internal/alert"
	"github.com/tomz197/fireworks/internal/alert/chime"
	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/console"
	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/input"
	"github.com/tomz197/fireworks/internal/loop"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fireworks",
		Short:         "New Year countdown and fireworks in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShow,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fireworks: %v\n", err)
		os.Exit(1)
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           config.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "fireworks",
	})

	restore, err := console.New().Init()
	defer restore()
	if err != nil {
		logger.Warn("console setup failed", "err", err)
	}

	cfg, err := config.Embedded()
	if err != nil {
		return err
	}

	if w, h, err := draw.DefaultTermSizeFunc(); err == nil {
		logger.Debug("terminal", "width", w, "height", h)
		if tooSmall(w, h, cfg.Frame) {
			logger.Warn("terminal smaller than frame, output will wrap",
				"frame", fmt.Sprintf("%dx%d", cfg.Frame.Width, cfg.Frame.Height))
		}
	}

	var emitter alert.Emitter = alert.Noop{}
	if spk, err := chime.NewSpeaker(); err != nil {
		logger.Debug("no audio, alerts disabled", "err", err)
	} else {
		defer spk.Close()
		emitter = spk
	}

	if draw.IsTerminal(os.Stdout) {
		draw.HideCursor(os.Stdout)
		defer draw.ShowCursor(os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, os.Stdin, os.Stdout, loop.Options{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Alert:  emitter,
		Logger: logger,
	})
}

// tooSmall reports whether a width×height terminal cannot hold a frame.
func tooSmall(width, height int, frame config.Frame) bool {
	return width < frame.Width || height < frame.Height
}

// run plays the show on out, then waits for Enter on in. Input that ends
// without a newline also finishes the program.
func run(ctx context.Context, in io.Reader, out io.Writer, opts loop.Options) error {
	if err := loop.New(out, opts).Run(ctx); err != nil {
		return fmt.Errorf("show: %w", err)
	}

	if err := input.WaitEnter(ctx, in); err != nil && !errors.Is(err, input.ErrClosed) {
		return err
	}
	return nil
}
