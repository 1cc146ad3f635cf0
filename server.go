package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/environment"
	"github.com/smartconseil/sc_contact/metrics"
	"github.com/smartconseil/sc_contact/routers"
	"github.com/smartconseil/sc_contact/routers/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// DatabaseConnector is the lifecycle of the document store connection as seen by the server
type DatabaseConnector interface {
	Connect(ctx context.Context) <-chan struct{}
	Disconnect(ctx context.Context) error
}

// Server runs the HTTP server and drives the database connection lifecycle
type Server struct {
	engine *gin.Engine
	logger *zap.Logger
	cfg    *config.AppConfig
	db     DatabaseConnector
}

func NewServer(logger *zap.Logger, env *environment.Env, cfg *config.AppConfig, mainRouter routers.MainRouter, db DatabaseConnector) *Server {
	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestLogger(logger), metrics.Middleware())

	mainRouter.RegisterRoutes(engine.Group("/"))
	engine.NoRoute(mainRouter.NoRoute)

	return &Server{
		engine: engine,
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Handler returns the http.Handler serving the app's routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start starts the database connection attempt and serves HTTP until ctx is done,
// then shuts the server down and closes the database connection
func (s *Server) Start(ctx context.Context) error {
	connected := s.db.Connect(ctx)
	if s.cfg.Database.AwaitConnection {
		s.logger.Info("waiting for database connection attempt")
		select {
		case <-connected:
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "stopped while waiting for database")
		}
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		s.disconnectDatabase()
		return errors.Wrapf(err, "could not listen on port %d", s.cfg.Port)
	}

	httpServer := &http.Server{Handler: s.engine}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server started", zap.String("address", listener.Addr().String()))
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		s.disconnectDatabase()
		return errors.Wrap(err, "server stopped unexpectedly")
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = httpServer.Shutdown(shutdownCtx)
	s.disconnectDatabase()
	if err != nil {
		return errors.Wrap(err, "could not shut down server")
	}

	s.logger.Info("server stopped")
	return nil
}

func (s *Server) disconnectDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.db.Disconnect(ctx); err != nil {
		s.logger.Error("could not disconnect from database", zap.Error(err))
	}
}
