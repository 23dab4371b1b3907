package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a patient account. Email is the natural key.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	DateOfBirth string    `gorm:"column:dob;type:varchar(10)" json:"dob"`
	Gender      string    `gorm:"type:varchar(20)" json:"gender"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Patient) User() *User {
	return &User{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Password:  p.Password,
		Role:      RolePatient,
		CreatedAt: p.CreatedAt,
	}
}
