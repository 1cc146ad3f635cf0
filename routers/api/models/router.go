package models

import (
	"github.com/gin-gonic/gin"
)

// Router registers its handlers on a gin router group
type Router interface {
	RegisterRoutes(*gin.RouterGroup)
}
