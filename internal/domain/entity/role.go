package entity

// RoleNames constants
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// IsValidRole reports whether role names one of the two account kinds
func IsValidRole(role string) bool {
	return role == RoleDoctor || role == RolePatient
}
