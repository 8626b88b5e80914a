package util

import (
	"cs_hub_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	user := &model.User{Email: "a@x.vn", Role: model.RoleAdmin}
	user.ID = 42

	token, err := GenerateJWT(user, "secret-test", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret-test")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "a@x.vn", claims.Email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	user := &model.User{Email: "a@x.vn"}
	token, err := GenerateJWT(user, "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-b")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	user := &model.User{Email: "a@x.vn"}
	token, err := GenerateJWT(user, "secret-a", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret-a")
	assert.Error(t, err)
}
