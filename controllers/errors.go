package controllers

import (
	"errors"

	"bufood/pkg/resp"
	"bufood/services"

	"github.com/gin-gonic/gin"
)

// writeErr maps the service error taxonomy onto HTTP status codes. Controllers
// never invent their own rules; they only translate.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrConcurrentModification):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrInvalidPaymentTransition),
		errors.Is(err, services.ErrMissingRequiredField),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrInvalidPayload):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
