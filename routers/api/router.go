package api

import (
	"github.com/gin-gonic/gin"
	"github.com/smartconseil/sc_contact/database"
	"github.com/smartconseil/sc_contact/routers/api/models"
	"github.com/smartconseil/sc_contact/services"
	"go.uber.org/zap"
)

// APIRouter is the router for the JSON endpoints of the contact form
type APIRouter interface {
	models.Router
	CheckDatabase(*gin.Context)
	CreateContact(*gin.Context)
	GetContacts(*gin.Context)
}

type apiRouter struct {
	logger         *zap.Logger
	contactService services.ContactService
	dbStatus       *database.ConnectionStatus
}

// NewAPIRouter creates an APIRouter
func NewAPIRouter(logger *zap.Logger, contactService services.ContactService, dbStatus *database.ConnectionStatus) APIRouter {
	return &apiRouter{
		logger:         logger,
		contactService: contactService,
		dbStatus:       dbStatus,
	}
}

// RegisterRoutes registers all of the API's routes to the given router group
func (r *apiRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/check-database", r.CheckDatabase)
	routerGroup.POST("/contact", r.CreateContact)
	routerGroup.GET("/contacts", r.GetContacts)
}
