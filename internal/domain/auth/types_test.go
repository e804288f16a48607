package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsGuest(t *testing.T) {
	t.Parallel()

	assert.True(t, Session{Role: RoleGuest}.IsGuest())
	assert.False(t, Session{Role: RoleUser}.IsGuest())
	assert.False(t, Session{Role: RoleAdmin}.IsGuest())
}

func TestSession_IsAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, Session{Role: RoleAdmin}.IsAdmin())
	assert.True(t, Session{Role: RoleSuperAdmin}.IsAdmin())
	assert.False(t, Session{Role: RoleUser}.IsAdmin())
	assert.False(t, Session{Role: RoleGuest}.IsAdmin())
}
