package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"ADMIN":          RoleAdmin,
		"admin":          RoleAdmin,
		"  Gestionnaire": RoleGestionnaire,
		"LIVREUR ":       RoleLivreur,
		"livreur":        RoleLivreur,
	}
	for raw, want := range cases {
		got, ok := NormalizeRole(raw)
		assert.True(t, ok, "raw %q", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "root", "GESTIONAIRE", "ADMINISTRATOR"} {
		_, ok := NormalizeRole(raw)
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestRefreshTokenValidity(t *testing.T) {
	rt := &RefreshToken{
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	assert.True(t, rt.IsValid())

	rt.Revoked = true
	assert.False(t, rt.IsValid())

	rt.Revoked = false
	rt.ExpiresAt = time.Now().Add(-time.Minute)
	assert.True(t, rt.IsExpired())
	assert.False(t, rt.IsValid())
}
