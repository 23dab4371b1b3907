package entity

import (
	"fmt"
	"time"
)

const RegistrationSubject = "MedTrack Registration"

// RegistrationEvent announces a newly registered account
type RegistrationEvent struct {
	Role       string    `json:"role"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPatientRegisteredEvent(p *Patient, now time.Time) *RegistrationEvent {
	return &RegistrationEvent{
		Role:       RolePatient,
		UserID:     p.ID.String(),
		Name:       p.Name,
		Email:      p.Email,
		Subject:    RegistrationSubject,
		Message:    fmt.Sprintf("New patient registered: %s (%s)", p.Name, p.Email),
		OccurredAt: now,
	}
}

func NewDoctorRegisteredEvent(d *Doctor, now time.Time) *RegistrationEvent {
	return &RegistrationEvent{
		Role:       RoleDoctor,
		UserID:     d.ID.String(),
		Name:       d.Name,
		Email:      d.Email,
		Subject:    RegistrationSubject,
		Message:    fmt.Sprintf("New doctor registered: %s (%s) - %s", d.Name, d.Email, d.Specialization),
		OccurredAt: now,
	}
}
