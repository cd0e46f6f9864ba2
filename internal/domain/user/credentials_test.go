package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("john.doe@example.com"))
	assert.False(t, IsValidEmail("john.doe@example"))
	assert.False(t, IsValidEmail("john doe@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("password123"))
	assert.False(t, IsStrongPassword("pass12"))
	assert.False(t, IsStrongPassword("passwordonly"))
	assert.False(t, IsStrongPassword("1234567890"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", NormalizeEmail("  Jane@Example.COM "))
}

func TestCanAccessAppointments(t *testing.T) {
	client := &models.User{ID: "c1", Role: string(RoleClient)}
	pro := &models.User{ID: "p1", Role: string(RoleProfessional)}

	assert.True(t, CanAccessAppointments(client, "c1"))
	assert.False(t, CanAccessAppointments(client, "c2"))
	assert.True(t, CanAccessAppointments(pro, "c2"))
	assert.False(t, CanAccessAppointments(nil, "c1"))
}
