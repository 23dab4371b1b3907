package usecase

import (
	"medtrack/internal/delivery/dto"
	"medtrack/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// AggregateDoctorStats computes the doctor dashboard counters from the doctor's
// appointments. today is YYYY-MM-DD; dates are compared as ISO strings.
func AggregateDoctorStats(appointments []entity.Appointment, today string) dto.DoctorStats {
	stats := dto.DoctorStats{
		WeekCount: len(appointments),
	}

	monthStart := today
	if len(today) >= 7 {
		monthStart = today[:7] + "-01"
	}

	patients := make(map[uuid.UUID]struct{})
	for i := range appointments {
		a := &appointments[i]

		if a.Date == today {
			stats.TodayCount++
			if a.Status == entity.AppointmentStatusConfirmed {
				stats.TodayConfirmed++
			}
		}
		if a.Date >= monthStart {
			stats.PatientNew++
		}
		if a.HasPrescription() {
			stats.PrescriptionTotal++
		}
		patients[a.PatientID] = struct{}{}
	}
	stats.PatientTotal = len(patients)

	return stats
}
