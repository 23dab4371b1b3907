package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs, decoded from urlencoded forms

type LoginRequest struct {
	Email    string `schema:"email" validate:"required,email"`
	Password string `schema:"password" validate:"required"`
	Role     string `schema:"role" validate:"required,oneof=doctor patient"`
}

// RegisterPatientRequest is the patient sign-up form
type RegisterPatientRequest struct {
	FirstName   string `schema:"firstName" validate:"required"`
	LastName    string `schema:"lastName" validate:"required"`
	DateOfBirth string `schema:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `schema:"gender" validate:"omitempty,max=20"`
	Email       string `schema:"email" validate:"required,email"`
	Phone       string `schema:"phone" validate:"omitempty,max=20"`
	Address     string `schema:"address"`
	Password    string `schema:"password" validate:"required,min=6"`
}

// RegisterDoctorRequest is the doctor sign-up form
type RegisterDoctorRequest struct {
	FirstName      string `schema:"firstName" validate:"required"`
	LastName       string `schema:"lastName" validate:"required"`
	Specialization string `schema:"specialization" validate:"required,max=100"`
	License        string `schema:"license" validate:"omitempty,max=50"`
	Experience     string `schema:"experience" validate:"omitempty,max=20"`
	Hospital       string `schema:"hospital"`
	Email          string `schema:"email" validate:"required,email"`
	Phone          string `schema:"phone" validate:"omitempty,max=20"`
	Address        string `schema:"address"`
	Password       string `schema:"password" validate:"required,min=6"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is returned by a successful login
type SessionResponse struct {
	Token string
	Role  string
}
