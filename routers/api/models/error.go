package models

import (
	"github.com/gin-gonic/gin"
)

// APIError is a struct to store a standard API error
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// NewAPIError creates an APIError with given message and underlying error
func NewAPIError(message string, err error) APIError {
	apiErr := APIError{
		Message: message,
	}
	if err != nil {
		apiErr.Err = err.Error()
	}
	return apiErr
}

// SendAPIError sends an error with given status, message and underlying error to the user
func SendAPIError(ctx *gin.Context, status int, message string, err error) {
	ctx.JSON(status, NewAPIError(message, err))
	ctx.Abort()
}
