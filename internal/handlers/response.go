package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturepath/venturepath-backend/internal/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError translates a service-layer error onto the wire via the
// sentinel taxonomy. Unrecognized errors become a 500.
func RespondServiceError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) && ae.Status != 0 {
		RespondError(c, ae.Status, ae.Code, err)
		return
	}

	switch {
	case errors.Is(err, apierr.ErrValidation):
		RespondError(c, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, apierr.ErrAlreadyFinalized):
		RespondError(c, http.StatusBadRequest, "already_finalized", err)
	case errors.Is(err, apierr.ErrNoContent):
		RespondError(c, http.StatusBadRequest, "no_generated_content", err)
	case errors.Is(err, apierr.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, apierr.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apierr.ErrGenerationParse):
		RespondError(c, http.StatusInternalServerError, "generation_parse_failed", err)
	case errors.Is(err, apierr.ErrExternalService):
		RespondError(c, http.StatusBadGateway, "external_service_failed", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
