package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAppError(t *testing.T) {
	appErr := NewUserNotFoundError("42")
	wrapped := fmt.Errorf("resolving profile: %w", appErr)

	got := GetAppError(wrapped)

	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeUserNotFound, got.Type)
	assert.Nil(t, GetAppError(fmt.Errorf("plain error")))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsInvalidIdentifier(NewInvalidIdentifierError("bad fid")))
	assert.True(t, IsUserNotFound(NewUserNotFoundError("42")))
	assert.True(t, IsRenderFailure(NewRenderFailureError(fmt.Errorf("bad template"))))

	// Timeouts count as upstream unavailability.
	assert.True(t, IsUpstreamUnavailable(NewUpstreamUnavailableError("registry", nil)))
	assert.True(t, IsUpstreamUnavailable(NewTimeoutError("registry query")))
	assert.False(t, IsUpstreamUnavailable(NewUserNotFoundError("42")))
}

func TestUserMessage_DoesNotLeakCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp 10.0.0.1:443: connection refused")
	err := NewUpstreamUnavailableError("social graph", cause)

	assert.NotContains(t, err.UserMessage(), "10.0.0.1")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, 400, NewInvalidIdentifierError("bad").HTTPStatus)
	assert.Equal(t, 404, NewUserNotFoundError("42").HTTPStatus)
	assert.Equal(t, 502, NewUpstreamUnavailableError("x", nil).HTTPStatus)
	assert.Equal(t, 504, NewTimeoutError("x").HTTPStatus)
	assert.Equal(t, 500, NewRenderFailureError(nil).HTTPStatus)
	assert.Equal(t, 500, NewInternalError("boom").HTTPStatus)
}

func TestWithCause_Unwraps(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewInternalError("wrapper").WithCause(cause)

	assert.Equal(t, cause, err.Unwrap())
}
