package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartconseil/sc_contact/database"
)

// GET: /check-database
// Response: status string ("connected" | "error")
func (r *apiRouter) CheckDatabase(ctx *gin.Context) {
	if r.dbStatus.Get() == database.Connected {
		ctx.JSON(http.StatusOK, checkDatabaseRes{Status: databaseStatusConnected})
		return
	}

	ctx.JSON(http.StatusOK, checkDatabaseRes{Status: databaseStatusError})
}
