package usecase

import (
	"context"
	"errors"
	"time"

	"medtrack/internal/converter"
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"
	"medtrack/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = errors.New("patient not found")

type DashboardUsecase interface {
	DoctorDashboard(ctx context.Context, doctor *entity.Identity) (*dto.DoctorDashboardResponse, error)
	PatientDashboard(ctx context.Context, patient *entity.Identity) (*dto.PatientDashboardResponse, error)
	PatientProfile(ctx context.Context, identity *entity.Identity) (*dto.PatientProfileResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	now             func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		now:             time.Now,
	}
}

func (u *dashboardUsecase) DoctorDashboard(ctx context.Context, doctor *entity.Identity) (*dto.DoctorDashboardResponse, error) {
	if !doctor.IsDoctor() {
		return nil, ErrForbidden
	}

	appointments, err := u.appointmentRepo.FindByParticipant(ctx, doctor.ID, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctor.ID, err)
		return nil, err
	}

	today := u.now().UTC().Format(dateLayout)
	return &dto.DoctorDashboardResponse{
		Doctor:       doctor,
		Today:        today,
		Stats:        AggregateDoctorStats(appointments, today),
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}

func (u *dashboardUsecase) PatientDashboard(ctx context.Context, patient *entity.Identity) (*dto.PatientDashboardResponse, error) {
	if !patient.IsPatient() {
		return nil, ErrForbidden
	}

	appointments, err := u.appointmentRepo.FindByParticipant(ctx, patient.ID, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patient.ID, err)
		return nil, err
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	prescriptions := make([]entity.Appointment, 0)
	for _, a := range appointments {
		if a.HasPrescription() {
			prescriptions = append(prescriptions, a)
		}
	}

	return &dto.PatientDashboardResponse{
		Patient:       patient,
		Appointments:  converter.AppointmentsToResponses(appointments),
		Prescriptions: converter.AppointmentsToResponses(prescriptions),
		Doctors:       converter.DoctorsToOptions(doctors),
	}, nil
}

// PatientProfile loads the stored record behind the session. Doctors and deleted
// accounts have no profile and get ErrPatientNotFound.
func (u *dashboardUsecase) PatientProfile(ctx context.Context, identity *entity.Identity) (*dto.PatientProfileResponse, error) {
	if identity == nil {
		return nil, ErrPatientNotFound
	}

	patient, err := u.patientRepo.FindByEmail(ctx, identity.Email)
	if err != nil {
		u.log.Warnf("Failed to find patient by email: %+v", err)
		return nil, err
	}
	if patient == nil || patient.ID != identity.ID {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToProfile(patient), nil
}
