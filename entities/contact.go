package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactField string

const (
	ContactID        ContactField = "_id"
	ContactName      ContactField = "nom"
	ContactEmail     ContactField = "email"
	ContactMessage   ContactField = "message"
	ContactCreatedAt ContactField = "created_at"
)

// Contact is the struct to store contact form submissions.
// Fields the sender left out are nil and not stored, empty ones are stored as "".
type Contact struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	Name      *string            `json:"nom,omitempty" bson:"nom,omitempty"`
	Email     *string            `json:"email,omitempty" bson:"email,omitempty"`
	Message   *string            `json:"message,omitempty" bson:"message,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
