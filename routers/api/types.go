package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/smartconseil/sc_contact/entities"
)

// messages sent back to the landing page, kept in the site's language
const (
	contactCreatedMessage       = "Contact créé avec succès!"
	contactCreationErrorMessage = "Erreur lors de la création du contact"
	contactsFetchErrorMessage   = "Erreur lors de la récupération des contacts"
	invalidJSONMessage          = "Requête JSON invalide"
)

const (
	databaseStatusConnected = "connected"
	databaseStatusError     = "error"
)

type checkDatabaseRes struct {
	Status string `json:"status"`
}

// formValue is a contact form field accepting any JSON value.
// Numbers and booleans are kept as their text, objects and arrays as compact JSON.
// Absent and null fields leave value nil.
type formValue struct {
	value *string
}

func (v *formValue) UnmarshalJSON(data []byte) error {
	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var text string
	switch decoded := decoded.(type) {
	case nil:
		return nil
	case string:
		text = decoded
	case float64, bool:
		text = fmt.Sprint(decoded)
	default:
		var compacted bytes.Buffer
		if err := json.Compact(&compacted, data); err != nil {
			return err
		}
		text = compacted.String()
	}

	v.value = &text
	return nil
}

type createContactReq struct {
	Name    formValue `json:"nom"`
	Email   formValue `json:"email"`
	Message formValue `json:"message"`
}

type createContactRes struct {
	Message string           `json:"message"`
	Contact entities.Contact `json:"contact"`
}
