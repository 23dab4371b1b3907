package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential view shared by patients and doctors
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}

// Identity is the authenticated principal bound to a session
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// Identity returns the session identity for the user
func (u *User) Identity() *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

func (i *Identity) IsDoctor() bool {
	return i != nil && i.Role == RoleDoctor
}

func (i *Identity) IsPatient() bool {
	return i != nil && i.Role == RolePatient
}
