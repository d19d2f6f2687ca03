package errs

import "errors"

// Domain sentinel errors, mapped to HTTP codes in handlers.
var (
	// Absent entities.
	ErrNotFound = errors.New("not found")

	// Conflicts.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAlreadySubscribed      = errors.New("user already has an active subscription")
	ErrConcurrentLimit        = errors.New("concurrent stream limit exceeded")

	// Invalid arguments.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	ErrInvalidOTP    = errors.New("invalid OTP")

	// Illegal state transitions.
	ErrRefundNotCompleted  = errors.New("only completed payments can be refunded")
	ErrUploadNotCancelable = errors.New("cannot cancel upload once processing has started")

	// Authentication.
	ErrUnauthenticated    = errors.New("no active session")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account has been suspended")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
