// Package memory keeps every repository in process memory. It backs STORE_DRIVER=memory
// for local runs and the handler and usecase tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"medtrack/internal/domain/entity"
	domainRepo "medtrack/internal/domain/repository"

	"github.com/google/uuid"
)

type sessionEntry struct {
	identity  entity.Identity
	expiresAt time.Time
}

// Store is safe for concurrent use.
type Store struct {
	mu           sync.RWMutex
	patients     map[string]entity.Patient
	doctors      map[string]entity.Doctor
	appointments map[uuid.UUID]entity.Appointment
	transitions  []entity.AppointmentTransition
	sessions     map[string]sessionEntry
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		patients:     make(map[string]entity.Patient),
		doctors:      make(map[string]entity.Doctor),
		appointments: make(map[uuid.UUID]entity.Appointment),
		sessions:     make(map[string]sessionEntry),
		now:          time.Now,
	}
}

func (s *Store) Patients() domainRepo.PatientRepository { return &patientRepository{s} }

func (s *Store) Doctors() domainRepo.DoctorRepository { return &doctorRepository{s} }

func (s *Store) Appointments() domainRepo.AppointmentRepository { return &appointmentRepository{s} }

func (s *Store) Transitions() domainRepo.AppointmentTransitionRepository {
	return &appointmentTransitionRepository{s}
}

func (s *Store) Sessions() domainRepo.SessionRepository { return &sessionRepository{s} }

type patientRepository struct{ s *Store }

func (r *patientRepository) Create(_ context.Context, patient *entity.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.patients[patient.Email]; ok {
		return domainRepo.ErrDuplicateEmail
	}
	r.s.patients[patient.Email] = *patient
	return nil
}

func (r *patientRepository) FindByEmail(_ context.Context, email string) (*entity.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	patient, ok := r.s.patients[email]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

type doctorRepository struct{ s *Store }

func (r *doctorRepository) Create(_ context.Context, doctor *entity.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.doctors[doctor.Email]; ok {
		return domainRepo.ErrDuplicateEmail
	}
	r.s.doctors[doctor.Email] = *doctor
	return nil
}

func (r *doctorRepository) FindByEmail(_ context.Context, email string) (*entity.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doctor, ok := r.s.doctors[email]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, doctor := range r.s.doctors {
		if doctor.ID == id {
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) FindAll(_ context.Context) ([]entity.Doctor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doctors := make([]entity.Doctor, 0, len(r.s.doctors))
	for _, doctor := range r.s.doctors {
		doctors = append(doctors, doctor)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].Name < doctors[j].Name })
	return doctors, nil
}

type appointmentRepository struct{ s *Store }

func (r *appointmentRepository) Create(_ context.Context, appointment *entity.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.appointments[appointment.ID] = *appointment
	return nil
}

func (r *appointmentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	appointment, ok := r.s.appointments[id]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByParticipant(_ context.Context, participantID uuid.UUID, role string) ([]entity.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var appointments []entity.Appointment
	for _, appointment := range r.s.appointments {
		owner := appointment.PatientID
		if role == entity.RoleDoctor {
			owner = appointment.DoctorID
		}
		if owner == participantID {
			appointments = append(appointments, appointment)
		}
	}
	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (r *appointmentRepository) Update(_ context.Context, id uuid.UUID, changes entity.AppointmentChanges) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	appointment, ok := r.s.appointments[id]
	if !ok {
		return 0, nil
	}
	changes.Apply(&appointment)
	r.s.appointments[id] = appointment
	return 1, nil
}

type appointmentTransitionRepository struct{ s *Store }

func (r *appointmentTransitionRepository) Append(_ context.Context, transition *entity.AppointmentTransition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.transitions = append(r.s.transitions, *transition)
	return nil
}

func (r *appointmentTransitionRepository) FindByAppointmentID(_ context.Context, appointmentID uuid.UUID) ([]entity.AppointmentTransition, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var transitions []entity.AppointmentTransition
	for _, transition := range r.s.transitions {
		if transition.AppointmentID == appointmentID {
			transitions = append(transitions, transition)
		}
	}
	return transitions, nil
}

type sessionRepository struct{ s *Store }

func (r *sessionRepository) Save(_ context.Context, tokenID string, identity *entity.Identity, ttl time.Duration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[tokenID] = sessionEntry{identity: *identity, expiresAt: r.s.now().Add(ttl)}
	return nil
}

func (r *sessionRepository) Find(_ context.Context, tokenID string) (*entity.Identity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	entry, ok := r.s.sessions[tokenID]
	if !ok || !r.s.now().Before(entry.expiresAt) {
		return nil, nil
	}
	identity := entry.identity
	return &identity, nil
}

func (r *sessionRepository) Delete(_ context.Context, tokenID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, tokenID)
	return nil
}
