//go:build integration
// +build integration

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/database"
	"github.com/smartconseil/sc_contact/entities"
	"github.com/smartconseil/sc_contact/repositories"
	mongoServices "github.com/smartconseil/sc_contact/services/mongo"
	"github.com/smartconseil/sc_contact/testutils"
	"github.com/smartconseil/sc_contact/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const integrationCollection = "contacts_api_integration"

func setupContactIntegrationTest(t *testing.T) *gin.Engine {
	db := testutils.ConnectToIntegrationTestDB(t)
	assert.NoError(t, db.Collection(integrationCollection).Drop(context.Background()))
	t.Cleanup(func() {
		db.Collection(integrationCollection).Drop(context.Background())
	})

	contactRepository := repositories.NewContactRepository(testutils.IntegrationCollectionProvider{DB: db}, &config.AppConfig{
		Database: config.DatabaseConfig{Collection: integrationCollection},
	})
	contactService := mongoServices.NewMongoContactService(zap.NewNop(), contactRepository, utils.NewTimeProvider())
	router := NewAPIRouter(zap.NewNop(), contactService, database.NewConnectionStatus())

	_, testServer := gin.CreateTestContext(httptest.NewRecorder())
	router.RegisterRoutes(&testServer.RouterGroup)

	return testServer
}

func Test_CreateContact__should_list_created_contact(t *testing.T) {
	testServer := setupContactIntegrationTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact",
		bytes.NewBufferString(`{"nom":"Alice","email":"a@x.com","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	testServer.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var createRes createContactRes
	assert.NoError(t, testutils.UnmarshallResponse(w.Body, &createRes))

	w = httptest.NewRecorder()
	testServer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var contacts []entities.Contact
	assert.NoError(t, testutils.UnmarshallResponse(w.Body, &contacts))

	if assert.Len(t, contacts, 1) {
		assert.False(t, contacts[0].ID.IsZero())
		assert.Equal(t, createRes.Contact.ID, contacts[0].ID)
		assert.Equal(t, testutils.StringPtr("Alice"), contacts[0].Name)
		assert.Equal(t, testutils.StringPtr("a@x.com"), contacts[0].Email)
		assert.Equal(t, testutils.StringPtr("hi"), contacts[0].Message)
		assert.True(t, createRes.Contact.CreatedAt.Equal(contacts[0].CreatedAt))
	}
}

func Test_CreateContact__should_persist_empty_and_non_string_fields(t *testing.T) {
	testServer := setupContactIntegrationTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewBufferString(`{"nom":"","email":42}`))
	req.Header.Set("Content-Type", "application/json")
	testServer.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	testServer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contacts", nil))

	var contacts []entities.Contact
	assert.NoError(t, testutils.UnmarshallResponse(w.Body, &contacts))

	if assert.Len(t, contacts, 1) {
		assert.Equal(t, testutils.StringPtr(""), contacts[0].Name)
		assert.Equal(t, testutils.StringPtr("42"), contacts[0].Email)
		assert.Nil(t, contacts[0].Message)
	}
}
