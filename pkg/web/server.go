package web

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/apnode/apnode-go/pkg/content"
	"github.com/apnode/apnode-go/pkg/log"
)

// ErrRoutesInstalled is returned by a second Install.
var ErrRoutesInstalled = errors.New("web: routes already installed")

// CommandRunner queues a command line for the interpreter.
type CommandRunner interface {
	Exec(line, source string) error
}

// AttackStatus reports the attack state as JSON.
type AttackStatus interface {
	JSON() ([]byte, error)
}

// Config configures a Server.
type Config struct {
	// Resolver serves storage content. Required.
	Resolver *content.Resolver

	// Catalog holds the firmware-embedded pages. Optional.
	Catalog *content.Catalog

	// UseStorage disables the embedded routes.
	UseStorage bool

	// Language is the code served as /lang/default.lang.
	Language string

	Commands CommandRunner
	Attack   AttackStatus

	// Logger is used for operational logging. Optional.
	Logger *slog.Logger

	// Diagnostics receives one event per served request. Optional.
	Diagnostics log.Logger
}

// Server is the node's HTTP handler. It answers 503 until Install is
// called.
type Server struct {
	config Config

	mu      sync.RWMutex
	handler http.Handler
}

// NewServer creates a server with no routes installed.
func NewServer(config Config) (*Server, error) {
	if config.Resolver == nil {
		return nil, errors.New("web: config: resolver is required")
	}
	if config.Language == "" {
		config.Language = content.LangEnglish.Code()
	}
	return &Server{config: config}, nil
}

// Install binds the route table.
func (s *Server) Install() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handler != nil {
		return ErrRoutesInstalled
	}
	s.handler = s.routes()
	s.infoLog("routes installed", "embedded", s.embedded(), "language", s.config.Language)
	return nil
}

// Installed reports whether Install has succeeded.
func (s *Server) Installed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handler != nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	h := s.handler
	s.mu.RUnlock()

	if h == nil {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	h.ServeHTTP(w, r)
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/list", s.handleList)
	r.Get("/run", s.handleRun)
	r.Get("/attack.json", s.handleAttack)
	r.Get("/lang/default.lang", s.handleDefaultLanguage)

	if s.embedded() {
		for _, route := range s.config.Catalog.Routes() {
			asset, _ := s.config.Catalog.Lookup(route)
			r.Get(route, s.serveAsset(asset))
		}
	}

	r.With(cacheFor(scriptMaxAge)).Get("/js/*", s.handleResolve)
	r.NotFound(s.handleResolve)
	r.MethodNotAllowed(s.handleResolve)

	return r
}

// embedded reports whether the catalog routes are bound.
func (s *Server) embedded() bool {
	return !s.config.UseStorage && s.config.Catalog != nil && s.config.Catalog.Len() > 0
}

func (s *Server) debugLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, args...)
	}
}

func (s *Server) infoLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, args...)
	}
}

func (s *Server) warnLog(msg string, args ...any) {
	if s.config.Logger != nil {
		s.config.Logger.Warn(msg, args...)
	}
}

var _ http.Handler = (*Server)(nil)
