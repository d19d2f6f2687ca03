package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamvault/platform-service/internal/errs"
)

func performWithError(t *testing.T, err error) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		respondError(c, err)
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{errs.ErrNotFound, http.StatusNotFound, "not_found"},
		{errs.ErrEmailAlreadyRegistered, http.StatusConflict, "email_already_registered"},
		{errs.ErrAlreadySubscribed, http.StatusConflict, "already_subscribed"},
		{errs.ErrConcurrentLimit, http.StatusConflict, "stream_limit_reached"},
		{errs.ErrRefundNotCompleted, http.StatusConflict, "refund_not_allowed"},
		{errs.ErrUploadNotCancelable, http.StatusConflict, "upload_not_cancelable"},
		{errs.ErrInvalidRating, http.StatusBadRequest, "invalid_rating"},
		{errs.ErrInvalidOTP, http.StatusBadRequest, "invalid_otp"},
		{errs.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{errs.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{errs.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{errs.ErrAccountSuspended, http.StatusForbidden, "account_suspended"},
	}
	for _, tc := range cases {
		w, env := performWithError(t, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.code)
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, tc.code, env.Error.Code)
		assert.Equal(t, tc.err.Error(), env.Error.Message)
	}
}

func TestRespondErrorUnknownErrorIs500(t *testing.T) {
	w, env := performWithError(t, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "internal_error", env.Error.Code)
}

func TestRespondWrapsData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ok", func(c *gin.Context) {
		respond(c, http.StatusOK, gin.H{"value": 42})
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 42, data["value"])
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Request.Header.Set("Authorization", "Bearer abc123")
	assert.Equal(t, "abc123", bearerToken(c))

	c.Request.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, bearerToken(c))

	c.Request.Header.Del("Authorization")
	assert.Empty(t, bearerToken(c))
}
