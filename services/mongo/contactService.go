package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/smartconseil/sc_contact/entities"
	"github.com/smartconseil/sc_contact/repositories"
	"github.com/smartconseil/sc_contact/services"
	"github.com/smartconseil/sc_contact/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoContactService struct {
	logger            *zap.Logger
	contactRepository repositories.MongoRepository
	timeProvider      utils.TimeProvider
}

// NewMongoContactService creates a new ContactService that uses MongoDB as the storage technology
func NewMongoContactService(logger *zap.Logger, contactRepository repositories.MongoRepository, timeProvider utils.TimeProvider) services.ContactService {
	return &mongoContactService{
		logger:            logger,
		contactRepository: contactRepository,
		timeProvider:      timeProvider,
	}
}

func (s *mongoContactService) CreateContact(ctx context.Context, name, email, message *string) (*entities.Contact, error) {
	contact := &entities.Contact{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Email:   email,
		Message: message,
		// BSON dates only keep milliseconds
		CreatedAt: s.timeProvider.Now().UTC().Truncate(time.Millisecond),
	}

	_, err := s.contactRepository.InsertOne(ctx, *contact)
	if err != nil {
		return nil, errors.Wrap(err, "could not insert contact")
	}

	s.logger.Debug("contact created", zap.String("id", contact.ID.Hex()))
	return contact, nil
}

func (s *mongoContactService) GetContacts(ctx context.Context) ([]entities.Contact, error) {
	cur, err := s.contactRepository.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: string(entities.ContactID), Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "could not query for contacts")
	}
	defer cur.Close(ctx)

	contacts, err := decodeContactsResult(ctx, cur)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode result")
	}

	return contacts, nil
}

func decodeContactsResult(ctx context.Context, cur *mongo.Cursor) ([]entities.Contact, error) {
	contacts := []entities.Contact{}
	for cur.Next(ctx) {
		var contact entities.Contact
		err := cur.Decode(&contact)
		if err != nil {
			return nil, errors.Wrap(err, "could not decode contact")
		}
		contacts = append(contacts, contact)
	}

	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "cursor returned error")
	}

	return contacts, nil
}
