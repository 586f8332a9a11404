package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"customer", "pharmacist", "admin"} {
		r, err := ParseRole(valid)
		require.NoError(t, err)
		assert.Equal(t, Role(valid), r)
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)
}

func TestRoleCapabilities(t *testing.T) {
	t.Run("Customer", func(t *testing.T) {
		assert.False(t, RoleCustomer.IsAdmin())
		assert.False(t, RoleCustomer.CanReview())
	})

	t.Run("Pharmacist Is Subset Of Admin", func(t *testing.T) {
		assert.False(t, RolePharmacist.IsAdmin())
		assert.True(t, RolePharmacist.CanReview())
	})

	t.Run("Admin", func(t *testing.T) {
		assert.True(t, RoleAdmin.IsAdmin())
		assert.True(t, RoleAdmin.CanReview())
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, CheckPasswordHash("pw1", hash))
	assert.False(t, CheckPasswordHash("pw2", hash))
}
