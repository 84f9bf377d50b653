package reconciliation

import (
	"errors"

	"recon-manager/core/reconcile"
	"recon-manager/core/tabular"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Source string `json:"source,omitempty"`
	Field  string `json:"field,omitempty"`
}

// errorStatus maps a service error to an HTTP status and response body.
func errorStatus(err error) (int, ErrorResponse) {
	var vErr *reconcile.ValidationError
	if errors.As(err, &vErr) {
		return fiber.StatusBadRequest, ErrorResponse{Error: vErr.Error(), Source: vErr.Source, Field: vErr.Field}
	}
	var pErr *tabular.ParseError
	if errors.As(err, &pErr) {
		return fiber.StatusUnprocessableEntity, ErrorResponse{Error: pErr.Error(), Source: pErr.Source, Field: "file"}
	}
	var fErr *fiber.Error
	if errors.As(err, &fErr) {
		return fErr.Code, ErrorResponse{Error: fErr.Message}
	}
	if errors.Is(err, ErrRunNotFound) {
		return fiber.StatusNotFound, ErrorResponse{Error: err.Error()}
	}
	return fiber.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}
