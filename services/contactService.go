package services

import (
	"context"

	"github.com/smartconseil/sc_contact/entities"
)

// ContactService is the service for interactions with a remote contacts repository
type ContactService interface {
	// CreateContact persists a contact with the given fields, none of them are required.
	// nil fields are left out of the stored contact.
	CreateContact(ctx context.Context, name, email, message *string) (*entities.Contact, error)
	// GetContacts fetches all contacts in the order they were created
	GetContacts(ctx context.Context) ([]entities.Contact, error)
}
