package mongodb

import (
	"time"

	"medtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// Documents keep ids as their canonical string form so they stay readable in the shell.

type patientDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Password    string    `bson:"password"`
	DateOfBirth string    `bson:"dob"`
	Gender      string    `bson:"gender"`
	Phone       string    `bson:"phone,omitempty"`
	Address     string    `bson:"address,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
}

type doctorDocument struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Email          string    `bson:"email"`
	Password       string    `bson:"password"`
	Specialization string    `bson:"specialization"`
	License        string    `bson:"license"`
	Experience     string    `bson:"experience"`
	Hospital       string    `bson:"hospital"`
	Phone          string    `bson:"phone,omitempty"`
	Address        string    `bson:"address,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}

type appointmentDocument struct {
	ID          string    `bson:"_id"`
	DoctorID    string    `bson:"doctor_id"`
	DoctorName  string    `bson:"doctor_name"`
	PatientID   string    `bson:"patient_id"`
	PatientName string    `bson:"patient_name"`
	Specialty   string    `bson:"specialty"`
	Date        string    `bson:"date"`
	Time        string    `bson:"time"`
	Reason      string    `bson:"reason"`
	Status      string    `bson:"status"`
	Precautions string    `bson:"precautions,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type transitionDocument struct {
	ID            string                 `bson:"_id"`
	AppointmentID string                 `bson:"appointment_id"`
	ActorID       string                 `bson:"actor_id"`
	Action        string                 `bson:"action"`
	FromStatus    string                 `bson:"from_status,omitempty"`
	ToStatus      string                 `bson:"to_status"`
	Metadata      map[string]interface{} `bson:"metadata,omitempty"`
	CreatedAt     time.Time              `bson:"created_at"`
}

func parseID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return parsed
}

func toPatientDocument(p *entity.Patient) *patientDocument {
	return &patientDocument{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Password:    p.Password,
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Phone:       p.Phone,
		Address:     p.Address,
		CreatedAt:   p.CreatedAt,
	}
}

func (d *patientDocument) toEntity() *entity.Patient {
	return &entity.Patient{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Email:       d.Email,
		Password:    d.Password,
		DateOfBirth: d.DateOfBirth,
		Gender:      d.Gender,
		Phone:       d.Phone,
		Address:     d.Address,
		CreatedAt:   d.CreatedAt,
	}
}

func toDoctorDocument(d *entity.Doctor) *doctorDocument {
	return &doctorDocument{
		ID:             d.ID.String(),
		Name:           d.Name,
		Email:          d.Email,
		Password:       d.Password,
		Specialization: d.Specialization,
		License:        d.License,
		Experience:     d.Experience,
		Hospital:       d.Hospital,
		Phone:          d.Phone,
		Address:        d.Address,
		CreatedAt:      d.CreatedAt,
	}
}

func (d *doctorDocument) toEntity() *entity.Doctor {
	return &entity.Doctor{
		ID:             parseID(d.ID),
		Name:           d.Name,
		Email:          d.Email,
		Password:       d.Password,
		Specialization: d.Specialization,
		License:        d.License,
		Experience:     d.Experience,
		Hospital:       d.Hospital,
		Phone:          d.Phone,
		Address:        d.Address,
		CreatedAt:      d.CreatedAt,
	}
}

func toAppointmentDocument(a *entity.Appointment) *appointmentDocument {
	return &appointmentDocument{
		ID:          a.ID.String(),
		DoctorID:    a.DoctorID.String(),
		DoctorName:  a.DoctorName,
		PatientID:   a.PatientID.String(),
		PatientName: a.PatientName,
		Specialty:   a.Specialty,
		Date:        a.Date,
		Time:        a.Time,
		Reason:      a.Reason,
		Status:      string(a.Status),
		Precautions: a.Precautions,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (d *appointmentDocument) toEntity() *entity.Appointment {
	return &entity.Appointment{
		ID:          parseID(d.ID),
		DoctorID:    parseID(d.DoctorID),
		DoctorName:  d.DoctorName,
		PatientID:   parseID(d.PatientID),
		PatientName: d.PatientName,
		Specialty:   d.Specialty,
		Date:        d.Date,
		Time:        d.Time,
		Reason:      d.Reason,
		Status:      entity.AppointmentStatus(d.Status),
		Precautions: d.Precautions,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toTransitionDocument(t *entity.AppointmentTransition) *transitionDocument {
	return &transitionDocument{
		ID:            t.ID.String(),
		AppointmentID: t.AppointmentID.String(),
		ActorID:       t.ActorID.String(),
		Action:        t.Action,
		FromStatus:    string(t.FromStatus),
		ToStatus:      string(t.ToStatus),
		Metadata:      t.Metadata,
		CreatedAt:     t.CreatedAt,
	}
}

func (d *transitionDocument) toEntity() *entity.AppointmentTransition {
	return &entity.AppointmentTransition{
		ID:            parseID(d.ID),
		AppointmentID: parseID(d.AppointmentID),
		ActorID:       parseID(d.ActorID),
		Action:        d.Action,
		FromStatus:    entity.AppointmentStatus(d.FromStatus),
		ToStatus:      entity.AppointmentStatus(d.ToStatus),
		Metadata:      entity.JSON(d.Metadata),
		CreatedAt:     d.CreatedAt,
	}
}
