package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturepath/venturepath-backend/internal/apierr"
)

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apierr.ErrValidation, http.StatusBadRequest, "validation_failed"},
		{fmt.Errorf("mood score out of range: %w", apierr.ErrValidation), http.StatusBadRequest, "validation_failed"},
		{apierr.ErrAlreadyFinalized, http.StatusBadRequest, "already_finalized"},
		{apierr.ErrNoContent, http.StatusBadRequest, "no_generated_content"},
		{apierr.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{apierr.ErrNotFound, http.StatusNotFound, "not_found"},
		{apierr.ErrGenerationParse, http.StatusInternalServerError, "generation_parse_failed"},
		{apierr.ErrExternalService, http.StatusBadGateway, "external_service_failed"},
		{fmt.Errorf("something else entirely"), http.StatusInternalServerError, "internal_error"},
		{apierr.New(http.StatusConflict, "conflict", fmt.Errorf("stale")), http.StatusConflict, "conflict"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		RespondServiceError(c, tc.err)
		assert.Equal(t, tc.status, w.Code, "error %v", tc.err)

		var envelope ErrorEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, tc.code, envelope.Error.Code, "error %v", tc.err)
	}
}
