package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gin-gonic/gin"

	"github.com/smartconseil/sc_contact/database"
	"github.com/smartconseil/sc_contact/entities"
	mock_services "github.com/smartconseil/sc_contact/mocks/services"

	"github.com/golang/mock/gomock"

	"go.uber.org/zap"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCService := mock_services.NewMockContactService(ctrl)

	mockCService.EXPECT().CreateContact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&entities.Contact{}, nil).AnyTimes()
	mockCService.EXPECT().GetContacts(gomock.Any()).Return([]entities.Contact{}, nil).AnyTimes()

	router := NewAPIRouter(zap.NewNop(), mockCService, database.NewConnectionStatus())

	tests := []struct {
		route  string
		method string
	}{
		{
			route:  "/check-database",
			method: http.MethodGet,
		},
		{
			route:  "/contact",
			method: http.MethodPost,
		},
		{
			route:  "/contacts",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, testServer := gin.CreateTestContext(w)

			router.RegisterRoutes(&testServer.RouterGroup)

			req := httptest.NewRequest(tt.method, tt.route, nil)

			testServer.ServeHTTP(w, req)

			// making sure route is defined
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}
