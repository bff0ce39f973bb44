package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a@x.com", "a@x.com"},
		{"A@X.COM", "a@x.com"},
		{"  Mixed.Case@Example.Com ", "mixed.case@example.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleHost.Valid())
	assert.True(t, RoleCandidate.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("ADMIN").Valid())
	assert.False(t, Role("candidate").Valid())
}

func TestUserJSON_HidesSecrets(t *testing.T) {
	u := User{
		ID:           "id-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret",
		FullName:     "Ada",
		Role:         RoleCandidate,
		IsActive:     true,
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "IsActive")
	assert.Contains(t, string(data), `"full_name":"Ada"`)
}
