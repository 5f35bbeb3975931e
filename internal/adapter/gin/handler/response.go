package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "user-weather-service/pkg/errors"
)

// Response is the uniform envelope applied to every API route. Data is
// explicitly null on failure; Errors appears only on validation failure.
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// respondOK writes a 200 success envelope.
func respondOK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// respondValidationError writes a 400 envelope listing every failing field.
func respondValidationError(c *gin.Context, fieldErrors []string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Data:    nil,
		Message: "Validation error",
		Errors:  fieldErrors,
	})
}

// respondError translates a service error into the envelope. Typed errors
// carry their own status; anything else is a 500 whose message is the
// error's text, or the operation's fallback when that text is empty.
func respondError(c *gin.Context, err error, fallback string) {
	var validationErr *pkgerrors.ValidationError
	if errors.As(err, &validationErr) {
		respondValidationError(c, validationErr.Fields)
		return
	}

	status := http.StatusInternalServerError
	var statuser pkgerrors.HTTPStatuser
	if errors.As(err, &statuser) {
		status = statuser.HTTPStatus()
	}

	message := err.Error()
	if message == "" {
		message = fallback
	}

	c.JSON(status, Response{
		Success: false,
		Data:    nil,
		Message: message,
	})
}
