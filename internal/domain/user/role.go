package user

import "github.com/BruksfildServices01/appointment-booking/internal/models"

type Role string

const (
	RoleClient       Role = "CLIENT"
	RoleProfessional Role = "PROFESSIONAL"
)

func HasRole(u *models.User, r Role) bool {
	return u != nil && Role(u.Role) == r
}

// CanAccessAppointments lets users see their own appointments and
// professionals see everyone's.
func CanAccessAppointments(u *models.User, targetUserID string) bool {
	if u == nil {
		return false
	}
	if u.ID == targetUserID {
		return true
	}
	return HasRole(u, RoleProfessional)
}
