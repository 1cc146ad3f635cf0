package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_Middleware__should_count_requests_by_route(t *testing.T) {
	w := httptest.NewRecorder()
	_, testServer := gin.CreateTestContext(w)
	testServer.Use(Middleware())
	testServer.GET("/test/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/test/:id", "418"))

	req := httptest.NewRequest(http.MethodGet, "/test/123", nil)
	testServer.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/test/:id", "418")))
}

func Test_Middleware__should_label_unmatched_requests(t *testing.T) {
	w := httptest.NewRecorder()
	_, testServer := gin.CreateTestContext(w)
	testServer.Use(Middleware())

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404"))

	req := httptest.NewRequest(http.MethodGet, "/images/logo.svg", nil)
	testServer.ServeHTTP(w, req)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, unmatchedPath, "404")))
}

func Test_ContactCreated__should_increment_counter(t *testing.T) {
	before := testutil.ToFloat64(contactsCreatedTotal)

	ContactCreated()

	assert.Equal(t, before+1, testutil.ToFloat64(contactsCreatedTotal))
}

func Test_StoreOperationFailed__should_increment_counter_for_operation(t *testing.T) {
	before := testutil.ToFloat64(storeErrorsTotal.WithLabelValues("insert"))

	StoreOperationFailed("insert")

	assert.Equal(t, before+1, testutil.ToFloat64(storeErrorsTotal.WithLabelValues("insert")))
}

func Test_SetDatabaseConnected(t *testing.T) {
	SetDatabaseConnected(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(databaseConnected))

	SetDatabaseConnected(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(databaseConnected))
}

func Test_Handler__should_expose_metrics(t *testing.T) {
	ContactCreated()

	w := httptest.NewRecorder()
	_, testServer := gin.CreateTestContext(w)
	testServer.GET("/metrics", Handler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	testServer.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "sc_contact_contacts_created_total"))
}
