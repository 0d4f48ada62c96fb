package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "gold-chain-22k", Slugify("Gold Chain 22K"))
	assert.Equal(t, "silver-articles", Slugify("  Silver  Articles  "))
	assert.Equal(t, "ladies-ring", Slugify("Ladies' Ring!"))
}

func TestGenerateInvoiceNo(t *testing.T) {
	inv := GenerateInvoiceNo("INV-")
	assert.True(t, strings.HasPrefix(inv, "INV-"))
	assert.Len(t, inv, len("INV-")+8)
	assert.NotEqual(t, inv, GenerateInvoiceNo("INV-"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("counter@1234")
	require.NoError(t, err)
	assert.NotEqual(t, "counter@1234", hash)
	assert.True(t, CheckPasswordHash("counter@1234", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID, "staff@example.com", "staff")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff@example.com", claims.Email)
	assert.Equal(t, "staff", claims.Role)
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 24*time.Hour)

	token, err := manager.GenerateAccessToken(uuid.New(), "a@b.com", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	parsed, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}
