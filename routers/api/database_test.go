package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smartconseil/sc_contact/database"
	"github.com/smartconseil/sc_contact/testutils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func Test_CheckDatabase(t *testing.T) {
	tests := []struct {
		name       string
		status     database.Status
		wantStatus string
	}{
		{
			name:       "should return connected when connection succeeded",
			status:     database.Connected,
			wantStatus: "connected",
		},
		{
			name:       "should return error when connection failed",
			status:     database.Error,
			wantStatus: "error",
		},
		{
			name:       "should return error when connection attempt has not resolved",
			status:     database.Disconnected,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := database.NewConnectionStatus()
			if tt.status != database.Disconnected {
				status.Resolve(tt.status)
			}
			router := NewAPIRouter(zap.NewNop(), nil, status)

			w := httptest.NewRecorder()
			testCtx, _ := gin.CreateTestContext(w)
			testCtx.Request = httptest.NewRequest(http.MethodGet, "/check-database", nil)

			router.CheckDatabase(testCtx)

			assert.Equal(t, http.StatusOK, w.Code)

			var res checkDatabaseRes
			err := testutils.UnmarshallResponse(w.Body, &res)
			assert.NoError(t, err)
			assert.Equal(t, checkDatabaseRes{Status: tt.wantStatus}, res)
		})
	}
}
