//go:build integration
// +build integration

package repositories

import (
	"context"
	"testing"

	"github.com/smartconseil/sc_contact/config"
	"github.com/smartconseil/sc_contact/testutils"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func Test_ContactRepository__should_insert_and_find_in_contacts_collection(t *testing.T) {
	db := testutils.ConnectToIntegrationTestDB(t)
	defer db.Collection("contacts").Drop(context.Background())

	repo := NewContactRepository(testutils.IntegrationCollectionProvider{DB: db}, &config.AppConfig{
		Database: config.DatabaseConfig{Collection: "contacts"},
	})

	_, err := repo.InsertOne(context.Background(), bson.M{"nom": "Alice"})
	assert.NoError(t, err)

	count, err := db.Collection("contacts").CountDocuments(context.Background(), bson.M{})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	cur, err := repo.Find(context.Background(), bson.M{})
	assert.NoError(t, err)
	defer cur.Close(context.Background())
	assert.True(t, cur.Next(context.Background()))
}
