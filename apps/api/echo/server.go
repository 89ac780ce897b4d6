package echoapi

import (
	"context"
	"net/http"
	"os"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/sarathi-app/sarathi/core"
	"github.com/sarathi-app/sarathi/core/attendance"
	"github.com/sarathi-app/sarathi/core/session"
)

type (
	// Deps holds what the API handlers need.
	Deps struct {
		Logger        core.Logger
		SessionSvc    *session.Service
		AttendanceSvc *attendance.Service
		View          *attendance.View
	}

	Server struct {
		conf     *core.Config
		app      *echo.Echo
		deps     *Deps
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(conf *core.Config, shutdown chan os.Signal, deps *Deps) *Server {
	s := &Server{
		conf:     conf,
		app:      echo.New(),
		deps:     deps,
		errors:   make(chan error, 1),
		shutdown: shutdown,
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)
	s.app.Debug = s.conf.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(newJWTConfig(s.conf))

	registerSessionAPI(v1, jwt, s.conf, s.deps.SessionSvc)
	registerAttendanceAPI(v1, jwt, s.deps.AttendanceSvc, s.deps.View)
}

// Start blocks while serving; a failure is reported on Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error { return s.errors }

func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) signalShutdown() {
	if s.shutdown == nil {
		return
	}
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // shutdown already signalled
	}
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.conf.AppName+" API!")
}
