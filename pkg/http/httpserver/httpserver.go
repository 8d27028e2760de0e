package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 60
	defaultReadTimeout     = time.Second * 60
	defaultWriteTimeout    = time.Second * 60
	defaultIdleTimeout     = time.Second * 120
)

var ErrNotListening = errors.New("http server: not listening")

type serverConfig struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
}

type HTTPServer struct {
	addr          *net.TCPAddr
	server        *http.Server
	cfg           serverConfig
	readyCallback func(net.Addr)

	mu       sync.Mutex
	listener net.Listener
	closer   chan struct{}
	stopOnce sync.Once
}

type Option func(*HTTPServer) error

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		s.cfg.shutdownTimeout = timeout
		return nil
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		s.cfg.readTimeout = timeout
		return nil
	}
}

// WithWriteTimeout limits the time to write a response.
// Hijacked connections, e.g. websockets, are not affected
func WithWriteTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		s.cfg.writeTimeout = timeout
		return nil
	}
}

func WithIdleTimeout(timeout time.Duration) Option {
	return func(s *HTTPServer) error {
		s.cfg.idleTimeout = timeout
		return nil
	}
}

func WithHandler(handler http.Handler) Option {
	return func(s *HTTPServer) error {
		if handler == nil {
			return errors.New("http server: nil handler")
		}
		s.cfg.handler = handler
		return nil
	}
}

// WithReadySignal registers cb to be called with the actual listen address
// as soon as the server is able to accept connections
func WithReadySignal(cb func(net.Addr)) Option {
	return func(s *HTTPServer) error {
		s.readyCallback = cb
		return nil
	}
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http server: resolve %s: %w", addr, err)
	}
	server := &HTTPServer{
		addr: tcpAddr,
		cfg: serverConfig{
			writeTimeout:    defaultWriteTimeout,
			readTimeout:     defaultReadTimeout,
			idleTimeout:     defaultIdleTimeout,
			shutdownTimeout: defaultShutdownTimeout,
			handler:         http.NotFoundHandler(),
		},
		closer: make(chan struct{}),
	}
	for _, opt := range opts {
		if optErr := opt(server); optErr != nil {
			return nil, optErr
		}
	}
	server.server = &http.Server{
		Addr:              addr,
		Handler:           server.cfg.handler,
		ReadTimeout:       server.cfg.readTimeout,
		ReadHeaderTimeout: server.cfg.readTimeout,
		WriteTimeout:      server.cfg.writeTimeout,
		IdleTimeout:       server.cfg.idleTimeout,
	}
	return server, nil
}

// ListenAndServe blocks until the server is stopped or fails.
// A graceful stop is not considered an error
func (s *HTTPServer) ListenAndServe() error {
	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	if s.readyCallback != nil {
		s.readyCallback(listener.Addr())
	}

	fatal := make(chan error, 1)
	go func() {
		fatal <- s.server.Serve(listener)
	}()

	select {
	case err = <-fatal:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-s.closer:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil, ErrNotListening
	}
	return s.listener.Addr(), nil
}

// Stop gracefully shuts the server down. Subsequent calls are no-op
func (s *HTTPServer) Stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		close(s.closer)
		stopCtx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		if shutErr := s.server.Shutdown(stopCtx); shutErr != nil {
			err = fmt.Errorf("http server: shutdown %s: %w", s.addr, shutErr)
		}
	})
	return err
}
