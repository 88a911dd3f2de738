package utils_test

import (
	"testing"
	"time"

	"car-rental-booking/models/user"
	"car-rental-booking/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹ 0", utils.FormatCurrency(0))
	assert.Equal(t, "₹ 1,500", utils.FormatCurrency(1500))
	assert.Equal(t, "₹ 7,200", utils.FormatCurrency(7200))
	assert.Equal(t, "₹ 2,700", utils.FormatCurrency(2699.6))
	assert.Equal(t, "₹ 999", utils.FormatCurrency(999))
	assert.Equal(t, "₹ 1,234,567", utils.FormatCurrency(1234567))
	assert.Equal(t, "₹ -12,000", utils.FormatCurrency(-12000))
}

func TestGenerateAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("APP_SECRET", "unit-test-secret")

	u := &user.User{ID: 42, Username: "alice"}
	token, err := utils.GenerateAccessToken(u, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("unit-test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, float64(42), claims["uid"])
}

func TestGenerateAccessTokenRequiresSecret(t *testing.T) {
	t.Setenv("APP_SECRET", "")

	_, err := utils.GenerateAccessToken(&user.User{ID: 1, Username: "alice"}, time.Hour)
	assert.Error(t, err)
}

func TestExtractUsernameFromClaims(t *testing.T) {
	username, err := utils.ExtractUsernameFromClaims(jwt.MapClaims{"username": "alice"})
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)

	_, err = utils.ExtractUsernameFromClaims(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = utils.ExtractUsernameFromClaims(jwt.MapClaims{"username": ""})
	assert.Error(t, err)
}
