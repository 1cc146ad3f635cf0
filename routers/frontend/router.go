package frontend

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/routers/api/models"
	"github.com/smartconseil/sc_contact/templates"
	"github.com/smartconseil/sc_contact/utils"
	"go.uber.org/zap"
)

// Router serves the HTML landing page and the static assets it references
type Router interface {
	models.Router
	LandingPage(*gin.Context)
	StaticAssets(*gin.Context)
}

type templateDataModel struct {
	Cfg  *config.AppConfig
	Year int
}

type frontendRouter struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	timeProvider utils.TimeProvider
	landingPage  *template.Template
}

// NewRouter creates a frontend Router, failing when the landing page template cannot be parsed
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider) (Router, error) {
	landingPage, err := utils.LoadTemplate(templates.FS, "LandingPage", templates.LandingPage)
	if err != nil {
		return nil, errors.Wrap(err, "could not load landing page")
	}

	return &frontendRouter{
		logger:       logger,
		cfg:          cfg,
		timeProvider: timeProvider,
		landingPage:  landingPage,
	}, nil
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.LandingPage)
}
