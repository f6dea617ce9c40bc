// Package http serves the account API over HTTP.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"booking/config"
	"booking/internal/delivery"
	apimiddleware "booking/internal/delivery/http/middleware"
	"booking/internal/delivery/http/router"
	"booking/internal/delivery/http/validator"
	"booking/internal/delivery/middleware"
	"booking/internal/domain/lifecycle"
	"booking/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HTTPParams holds dependencies for the HTTP server, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params HTTPParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Config.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Config.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Config.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Config.HTTP.Timeouts.IdleTimeout

	// The service runs behind a TLS-terminating proxy.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	e.Pre(echomiddleware.RemoveTrailingSlash())

	// Recover first so panics in any later middleware are caught.
	e.Use(echomiddleware.Recover())
	// Request ID before the logger so access logs carry it.
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Config).Handle)
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
