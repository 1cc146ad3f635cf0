package repositories

import (
	"context"

	"github.com/smartconseil/sc_contact/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionProvider resolves a collection at call time
type CollectionProvider interface {
	Collection(name string) (*mongo.Collection, error)
}

// ContactRepository is the repository for Contact objects.
// The collection is looked up on every call since the database connection
// is established after the repository is created.
type ContactRepository struct {
	provider       CollectionProvider
	collectionName string
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(provider CollectionProvider, cfg *config.AppConfig) *ContactRepository {
	return &ContactRepository{
		provider:       provider,
		collectionName: cfg.Database.Collection,
	}
}

// Name returns the name of the contacts collection
func (r *ContactRepository) Name() string {
	return r.collectionName
}

func (r *ContactRepository) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	coll, err := r.provider.Collection(r.collectionName)
	if err != nil {
		return nil, err
	}

	return coll.Find(ctx, filter, opts...)
}

func (r *ContactRepository) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	coll, err := r.provider.Collection(r.collectionName)
	if err != nil {
		return nil, err
	}

	return coll.InsertOne(ctx, document, opts...)
}
