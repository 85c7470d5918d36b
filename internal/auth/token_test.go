package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viciolinks/internal/core/domain"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	token, err := iss.Issue("ana", domain.RoleUser)
	require.NoError(t, err)

	claims, err := iss.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	token, err := NewIssuer("one", time.Hour).Issue("ana", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	iss := NewIssuer("secret", time.Minute)
	past := time.Now().Add(-time.Hour)
	iss.now = func() time.Time { return past }
	token, err := iss.Issue("ana", domain.RoleAdmin)
	require.NoError(t, err)

	iss.now = time.Now
	_, err = iss.Parse(token)
	assert.ErrorContains(t, err, "expired")
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewIssuer("secret", time.Hour).Parse("not-a-token")
	assert.ErrorContains(t, err, "malformed")
}

func TestIssueWithoutSecret(t *testing.T) {
	_, err := NewIssuer("", time.Hour).Issue("ana", domain.RoleAdmin)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
