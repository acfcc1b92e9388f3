package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/fireworks/internal/alert"
	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/input"
	"github.com/tomz197/fireworks/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           config.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "ssh",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	cfg, err := config.Embedded()
	if err != nil {
		logger.Fatal("invalid show", "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			showMiddleware(cfg, logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Frames are flushed one at a time; don't let Nagle batch them.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// showMiddleware plays a private show on every session, then waits for
// Enter. Disconnecting stops the show through the session context.
func showMiddleware(cfg *config.Show, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, _, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			sessLogger.Info("new show session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)
			if pty.Window.Width < cfg.Frame.Width || pty.Window.Height < cfg.Frame.Height {
				sessLogger.Warn("terminal smaller than frame, output will wrap",
					"frame", fmt.Sprintf("%dx%d", cfg.Frame.Width, cfg.Frame.Height))
			}

			draw.HideCursor(sess)
			err := playSession(sess.Context(), sess, cfg, sessLogger)
			draw.ShowCursor(sess)

			switch {
			case err == nil, errors.Is(err, input.ErrClosed):
			case errors.Is(err, context.Canceled):
				sessLogger.Info("session left early")
			default:
				sessLogger.Error("show error", "err", err)
			}

			sessLogger.Info("session ended")
			next(sess)
		}
	}
}

func playSession(ctx context.Context, sess ssh.Session, cfg *config.Show, logger *log.Logger) error {
	show := loop.New(sess, loop.Options{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Alert:  &alert.Bell{W: sess},
		Logger: logger,
	})
	if err := show.Run(ctx); err != nil {
		return err
	}
	return input.WaitEnter(ctx, sess)
}
