package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the latest lifecycle action applied to an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed   AppointmentStatus = "Confirmed"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
	AppointmentStatusCompleted   AppointmentStatus = "Completed"
)

// Appointment is a visit booked by a patient with a doctor.
// Date is YYYY-MM-DD and Time is HH:MM, both as entered on the booking form.
type Appointment struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DoctorName  string            `gorm:"type:varchar(255)" json:"doctor_name"`
	PatientID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	PatientName string            `gorm:"type:varchar(255)" json:"patient_name"`
	Specialty   string            `gorm:"type:varchar(100)" json:"specialty"`
	Date        string            `gorm:"type:varchar(10);index" json:"date"`
	Time        string            `gorm:"type:varchar(5)" json:"time"`
	Reason      string            `gorm:"type:text" json:"reason"`
	Status      AppointmentStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Precautions string            `gorm:"type:text" json:"precautions,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewAppointment returns a Scheduled appointment with a random id
func NewAppointment(doctor *Doctor, patient *Identity, date, clock, reason string, now time.Time) *Appointment {
	return &Appointment{
		ID:          uuid.New(),
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		PatientID:   patient.ID,
		PatientName: patient.Name,
		Specialty:   doctor.Specialization,
		Date:        date,
		Time:        clock,
		Reason:      reason,
		Status:      AppointmentStatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

func (a *Appointment) HasPrescription() bool {
	return a.Precautions != ""
}

// CanConfirm reports whether a doctor may confirm the visit from the current status
func (a *Appointment) CanConfirm() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusRescheduled
}

// AppointmentChanges is a partial update. Nil fields are left untouched.
type AppointmentChanges struct {
	Date        *string
	Time        *string
	Status      *AppointmentStatus
	Precautions *string
	UpdatedAt   time.Time
}

// Fields returns the set fields keyed by column (and document field) name
func (c AppointmentChanges) Fields() map[string]interface{} {
	fields := map[string]interface{}{
		"updated_at": c.UpdatedAt,
	}
	if c.Date != nil {
		fields["date"] = *c.Date
	}
	if c.Time != nil {
		fields["time"] = *c.Time
	}
	if c.Status != nil {
		fields["status"] = string(*c.Status)
	}
	if c.Precautions != nil {
		fields["precautions"] = *c.Precautions
	}
	return fields
}

// Apply merges the set fields into a
func (c AppointmentChanges) Apply(a *Appointment) {
	if c.Date != nil {
		a.Date = *c.Date
	}
	if c.Time != nil {
		a.Time = *c.Time
	}
	if c.Status != nil {
		a.Status = *c.Status
	}
	if c.Precautions != nil {
		a.Precautions = *c.Precautions
	}
	a.UpdatedAt = c.UpdatedAt
}
