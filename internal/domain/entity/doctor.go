package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a doctor account. Email is the natural key.
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"type:text;not null" json:"-"`
	Specialization string    `gorm:"type:varchar(100);index" json:"specialization"`
	License        string    `gorm:"type:varchar(50)" json:"license"`
	Experience     string    `gorm:"type:varchar(20)" json:"experience"`
	Hospital       string    `gorm:"type:varchar(255)" json:"hospital"`
	Phone          string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address        string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (d *Doctor) User() *User {
	return &User{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		Role:      RoleDoctor,
		CreatedAt: d.CreatedAt,
	}
}
