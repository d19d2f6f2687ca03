package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/streamvault/platform-service/internal/errs"
)

// Envelope is the uniform response body. Every endpoint answers with it so
// clients can branch on success without sniffing the payload shape.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the machine code and the human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respond writes a success envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// respondError maps a service error onto its HTTP status and error code.
func respondError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, errs.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, errs.ErrEmailAlreadyRegistered):
		status, code = http.StatusConflict, "email_already_registered"
	case errors.Is(err, errs.ErrAlreadySubscribed):
		status, code = http.StatusConflict, "already_subscribed"
	case errors.Is(err, errs.ErrConcurrentLimit):
		status, code = http.StatusConflict, "stream_limit_reached"
	case errors.Is(err, errs.ErrRefundNotCompleted):
		status, code = http.StatusConflict, "refund_not_allowed"
	case errors.Is(err, errs.ErrUploadNotCancelable):
		status, code = http.StatusConflict, "upload_not_cancelable"
	case errors.Is(err, errs.ErrInvalidRating):
		status, code = http.StatusBadRequest, "invalid_rating"
	case errors.Is(err, errs.ErrInvalidOTP):
		status, code = http.StatusBadRequest, "invalid_otp"
	case errors.Is(err, errs.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, errs.ErrUnauthenticated):
		status, code = http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, errs.ErrInvalidToken):
		status, code = http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, errs.ErrAccountSuspended):
		status, code = http.StatusForbidden, "account_suspended"
	}
	c.JSON(status, Envelope{Success: false, Error: &ErrorBody{Code: code, Message: err.Error()}})
}

// respondBadRequest reports a malformed request body or parameter.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Error:   &ErrorBody{Code: "invalid_request", Message: err.Error()},
	})
}

// bearerToken extracts the access token from the Authorization header.
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return after
	}
	return ""
}

// queryInt parses an integer query parameter, falling back to def.
func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
