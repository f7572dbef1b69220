package helper

import (
	"net/http"
	"testing"

	"authsvc/internal/delivery/http/httperr"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	body := map[string]string{"accessToken": "any_access_token"}
	assert.Equal(t, http.StatusOK, OK(body).StatusCode)
	assert.Equal(t, body, OK(body).Body)

	missing := httperr.NewMissingParamError("email")
	assert.Equal(t, http.StatusBadRequest, BadRequest(missing).StatusCode)
	assert.Same(t, missing, BadRequest(missing).Body)

	assert.Equal(t, http.StatusUnauthorized, Unauthorized().StatusCode)
	assert.IsType(t, &httperr.AccessDeniedError{}, Unauthorized().Body)

	inUse := httperr.NewEmailInUseError()
	assert.Equal(t, http.StatusForbidden, Forbidden(inUse).StatusCode)
	assert.Same(t, inUse, Forbidden(inUse).Body)
}

func TestServerError(t *testing.T) {
	cause := errors.New("connection refused")
	resp := ServerError(cause)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	serverErr, ok := resp.Body.(*httperr.ServerError)
	require.True(t, ok)
	assert.Equal(t, "Internal server error", serverErr.Message())
	assert.NotContains(t, serverErr.Error(), "connection refused")
	assert.ErrorIs(t, serverErr, cause)
}
