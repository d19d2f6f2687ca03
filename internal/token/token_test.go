package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndSubject(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tokens, err := issuer.Issue("user-001")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)

	sub, err := issuer.Subject(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-001", sub)
}

func TestSubjectRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Subject("not-a-token")
	assert.Error(t, err)
}

func TestSubjectRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	other := NewIssuer("other-secret", time.Hour)

	tokens, err := issuer.Issue("user-001")
	require.NoError(t, err)

	_, err = other.Subject(tokens.AccessToken)
	assert.Error(t, err)
}

func TestSubjectRejectsExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	tokens, err := issuer.Issue("user-001")
	require.NoError(t, err)

	_, err = issuer.Subject(tokens.AccessToken)
	assert.Error(t, err)
}
