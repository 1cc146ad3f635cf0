package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/metrics"
	"github.com/smartconseil/sc_contact/routers/api"
	"github.com/smartconseil/sc_contact/routers/api/models"
	"github.com/smartconseil/sc_contact/routers/frontend"
	"go.uber.org/zap"
)

// MainRouter is the router for every route the server exposes
type MainRouter interface {
	models.Router
	NoRoute(*gin.Context)
}

type mainRouter struct {
	logger         *zap.Logger
	cfg            *config.AppConfig
	apiRouter      api.APIRouter
	frontendRouter frontend.Router
}

// NewMainRouter creates a new MainRouter
func NewMainRouter(logger *zap.Logger, cfg *config.AppConfig, apiRouter api.APIRouter, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		cfg:            cfg,
		apiRouter:      apiRouter,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers all of the app's routes to the given router group
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	r.frontendRouter.RegisterRoutes(routerGroup)
	r.apiRouter.RegisterRoutes(routerGroup)

	if r.cfg.Metrics.Enabled {
		routerGroup.GET("/metrics", metrics.Handler())
	}
}

// NoRoute handles requests no registered route matched, which can only be static assets
func (r *mainRouter) NoRoute(ctx *gin.Context) {
	r.frontendRouter.StaticAssets(ctx)
}
