package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/pkg/errors"
	"github.com/smartconseil/sc_contact/metrics"
	"github.com/smartconseil/sc_contact/routers/api/models"
	"go.uber.org/zap"
)

// POST: /contact
// application/json
// Request:  nom any
//           email any
//           message any
// Response: message string
//           contact entities.Contact
func (r *apiRouter) CreateContact(ctx *gin.Context) {
	var req createContactReq
	// bodies which are not JSON are ignored, the contact is created without fields
	if ctx.ContentType() == binding.MIMEJSON {
		err := ctx.ShouldBindJSON(&req)
		if err != nil && err != io.EOF {
			r.logger.Debug("could not parse contact request", zap.Error(err))
			models.SendAPIError(ctx, http.StatusBadRequest, invalidJSONMessage, err)
			return
		}
	}

	contact, err := r.contactService.CreateContact(ctx.Request.Context(), req.Name.value, req.Email.value, req.Message.value)
	if err != nil {
		r.logger.Error("could not create contact", zap.Error(err))
		metrics.StoreOperationFailed("insert")
		models.SendAPIError(ctx, http.StatusInternalServerError, contactCreationErrorMessage, errors.Cause(err))
		return
	}

	metrics.ContactCreated()
	ctx.JSON(http.StatusCreated, createContactRes{
		Message: contactCreatedMessage,
		Contact: *contact,
	})
}

// GET: /contacts
// Response: []entities.Contact
func (r *apiRouter) GetContacts(ctx *gin.Context) {
	contacts, err := r.contactService.GetContacts(ctx.Request.Context())
	if err != nil {
		r.logger.Error("could not fetch contacts", zap.Error(err))
		metrics.StoreOperationFailed("find")
		models.SendAPIError(ctx, http.StatusInternalServerError, contactsFetchErrorMessage, errors.Cause(err))
		return
	}

	ctx.JSON(http.StatusOK, contacts)
}
