package main

import (
	"errors"
	"fmt"
	"math/rand"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/loop"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           config.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "web",
	})

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	cfg, err := config.Embedded()
	if err != nil {
		logger.Fatal("invalid show", "err", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", showHandler(cfg, logger))

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr, "try", fmt.Sprintf("curl -N %s", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// showHandler streams one show per request as plain text with ANSI
// escapes. The show stops when the client goes away.
func showHandler(cfg *config.Show, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("X-Content-Type-Options", "nosniff")

		reqLogger := logger.With("remote", r.RemoteAddr)
		reqLogger.Info("stream started", "agent", r.UserAgent())

		show := loop.New(newFlushWriter(w), loop.Options{
			Config: cfg,
			Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
			Logger: reqLogger,
		})
		if err := show.Run(r.Context()); err != nil && !errors.Is(err, r.Context().Err()) {
			reqLogger.Warn("stream failed", "err", err)
			return
		}
		reqLogger.Info("stream ended")
	})
}

// flushWriter pushes every write to the client so that frames arrive as
// they are rendered.
type flushWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func newFlushWriter(w http.ResponseWriter) *flushWriter {
	return &flushWriter{w: w, rc: http.NewResponseController(w)}
}

func (fw *flushWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if err != nil {
		return n, err
	}
	if err := fw.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return n, err
	}
	return n, nil
}
