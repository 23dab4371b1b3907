package dto

import "medtrack/internal/domain/entity"

// DoctorStats are the doctor dashboard counters.
// WeekCount counts every appointment on record, not only this week's.
type DoctorStats struct {
	TodayCount         int
	TodayConfirmed     int
	WeekCount          int
	WeekDiff           int
	PatientTotal       int
	PatientNew         int
	PrescriptionTotal  int
	PrescriptionWeekly int
}

type DoctorDashboardResponse struct {
	Doctor       *entity.Identity
	Today        string
	Stats        DoctorStats
	Appointments []AppointmentResponse
}

type DoctorOption struct {
	ID             string
	Name           string
	Specialization string
	Hospital       string
}

type PatientDashboardResponse struct {
	Patient       *entity.Identity
	Appointments  []AppointmentResponse
	Prescriptions []AppointmentResponse
	Doctors       []DoctorOption
}

type PatientProfileResponse struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Age     string
	Gender  string
}
