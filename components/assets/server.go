package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// ErrNotStarted is returned by URL and Shutdown before Start.
var ErrNotStarted = errors.New("assets: server not started")

// Server serves Options.Dir under Options.Prefix.
type Server struct {
	opts Options

	mu       sync.Mutex
	listener net.Listener
	http     *http.Server
	done     chan error
}

// New validates the directory and returns an idle server.
func New(fns ...OptionFn) (*Server, error) {
	opts := NewOptions(fns...)
	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %q is not a directory", opts.Dir)
	}
	return &Server{opts: opts}, nil
}

// Options returns a copy of the server options.
func (s *Server) Options() Options {
	return s.opts
}

// Handler returns the mux serving the directory and the extra routes. It
// can be mounted in a caller's own server.
func (s *Server) Handler() http.Handler {
	files := http.StripPrefix(s.opts.Prefix, http.FileServer(http.Dir(s.opts.Dir)))
	mux := http.NewServeMux()
	mux.Handle(s.opts.Prefix, logRequests(s.opts.Logger, readOnly(files)))
	for _, route := range s.opts.Routes {
		mux.Handle(route.Pattern, logRequests(s.opts.Logger, route.Handler))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Start binds the listener, updates the configured assets URL and serves
// in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("assets: server already started")
	}

	addr := net.JoinHostPort(s.opts.Host, strconv.Itoa(s.opts.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("assets: listen %s: %w", addr, err)
	}
	s.listener = ln
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.done = make(chan error, 1)

	url := s.urlLocked()
	if s.opts.Config != nil {
		if err := s.opts.Config.SetAssetsURL(url); err != nil {
			_ = ln.Close()
			s.listener = nil
			return err
		}
	}
	s.opts.Logger.Info("assets server listening", "dir", s.opts.Dir, "url", url)

	go func(srv *http.Server, ln net.Listener, done chan<- error) {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		done <- err
	}(s.http, ln, s.done)
	return nil
}

// URL returns the public base URL, ending with a slash.
func (s *Server) URL() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return "", ErrNotStarted
	}
	return s.urlLocked(), nil
}

func (s *Server) urlLocked() string {
	return "http://" + s.listener.Addr().String() + s.opts.Prefix
}

// Shutdown stops the server, waiting up to the grace period for active
// requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.http, s.done
	s.mu.Unlock()
	if srv == nil {
		return ErrNotStarted
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Grace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("assets: shutdown: %w", err)
	}
	return <-done
}

// Run starts the server and blocks until ctx is done or serving fails.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	select {
	case err := <-s.done:
		return err
	case <-ctx.Done():
	}
	s.opts.Logger.Info("assets server stopping")
	return s.Shutdown(context.Background())
}

func readOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logger.Debug("assets request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
