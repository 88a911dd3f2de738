package auth_test

import (
	"testing"

	authTypes "car-rental-booking/types/auth"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, authTypes.LoginRequest{Username: "alice", Password: "secret"}.Validate())
	assert.Error(t, authTypes.LoginRequest{Password: "secret"}.Validate())
	assert.Error(t, authTypes.LoginRequest{Username: "alice"}.Validate())
	assert.Error(t, authTypes.LoginRequest{Username: "   ", Password: "secret"}.Validate())
}

func TestSignupRequestValidate(t *testing.T) {
	assert.NoError(t, authTypes.SignupRequest{Username: "alice", Password: "secret"}.Validate())
	assert.Error(t, authTypes.SignupRequest{}.Validate())
}
