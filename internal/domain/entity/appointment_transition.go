package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentTransition is one append-only entry of an appointment's status history
type AppointmentTransition struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID         `gorm:"type:uuid;not null;index" json:"appointment_id"`
	ActorID       uuid.UUID         `gorm:"type:uuid;not null" json:"actor_id"`
	Action        string            `gorm:"type:varchar(50);not null" json:"action"`
	FromStatus    AppointmentStatus `gorm:"type:varchar(20)" json:"from_status,omitempty"`
	ToStatus      AppointmentStatus `gorm:"type:varchar(20);not null" json:"to_status"`
	Metadata      JSON              `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time         `gorm:"index" json:"created_at"`
}

// NewAppointmentTransition records actor moving appointment from -> to
func NewAppointmentTransition(appointmentID, actorID uuid.UUID, action string, from, to AppointmentStatus, metadata JSON, now time.Time) *AppointmentTransition {
	return &AppointmentTransition{
		ID:            uuid.New(),
		AppointmentID: appointmentID,
		ActorID:       actorID,
		Action:        action,
		FromStatus:    from,
		ToStatus:      to,
		Metadata:      metadata,
		CreatedAt:     now,
	}
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Appointment lifecycle actions
const (
	AppointmentActionBook       = "appointment.book"
	AppointmentActionConfirm    = "appointment.confirm"
	AppointmentActionReschedule = "appointment.reschedule"
	AppointmentActionCancel     = "appointment.cancel"
	AppointmentActionComplete   = "appointment.complete"
)
