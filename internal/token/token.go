// Package token issues and parses the signed access/refresh token pairs
// used by the auth service.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/streamvault/platform-service/internal/errs"
	"github.com/streamvault/platform-service/internal/model"
)

// Issuer signs HMAC token pairs for authenticated users.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an issuer with the given signing secret and access
// token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a token pair for a user. The refresh token carries a
// random ID so two pairs for the same user never collide.
func (i *Issuer) Issue(userID string) (model.AuthToken, error) {
	now := time.Now()
	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(i.ttl).Unix(),
		"typ": "access",
	})
	accessStr, err := access.SignedString(i.secret)
	if err != nil {
		return model.AuthToken{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(i.ttl * 24).Unix(),
		"typ": "refresh",
	})
	refreshStr, err := refresh.SignedString(i.secret)
	if err != nil {
		return model.AuthToken{}, err
	}

	return model.AuthToken{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		ExpiresIn:    int64(i.ttl.Seconds()),
		TokenType:    "Bearer",
	}, nil
}

// Subject validates a token and returns its user ID.
func (i *Issuer) Subject(tokenStr string) (string, error) {
	parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errs.ErrInvalidToken
	}
	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", errs.ErrInvalidToken
	}
	return sub, nil
}
