package dto

import "time"

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID string `schema:"doctorId" validate:"required"`
	Date     string `schema:"date" validate:"required,datetime=2006-01-02"`
	Time     string `schema:"time" validate:"required,datetime=15:04"`
	Reason   string `schema:"reason" validate:"omitempty,max=1000"`
}

type RescheduleAppointmentRequest struct {
	Date string `schema:"date" validate:"required,datetime=2006-01-02"`
	Time string `schema:"time" validate:"required,datetime=15:04"`
}

type PrecautionsRequest struct {
	Precautions string `schema:"precautions" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	Specialty   string    `json:"specialty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	Precautions string    `json:"precautions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TransitionResponse struct {
	Action     string                 `json:"action"`
	ActorID    string                 `json:"actor_id"`
	FromStatus string                 `json:"from_status,omitempty"`
	ToStatus   string                 `json:"to_status"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type TransitionListResponse struct {
	AppointmentID string               `json:"appointment_id"`
	Transitions   []TransitionResponse `json:"transitions"`
	Total         int                  `json:"total"`
}
