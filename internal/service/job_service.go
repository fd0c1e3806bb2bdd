package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"consultorio/internal/repository"
)

type JobService struct {
	Doctors      *repository.DoctorRepository
	Appointments *repository.AppointmentRepository
	sender       *SenderService
}

func NewJobService(doctors *repository.DoctorRepository, appointments *repository.AppointmentRepository, sender *SenderService) *JobService {
	return &JobService{
		Doctors:      doctors,
		Appointments: appointments,
		sender:       sender,
	}
}

// SendUpcomingReminders collects tomorrow's non-deleted appointments, logs
// a per-doctor summary and sends a reminder to every appointment that has
// contact details on file.
func (s *JobService) SendUpcomingReminders() error {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	upcoming := s.Appointments.ListBetween(start, end)
	if len(upcoming) == 0 {
		log.Info().Time("day", start).Msg("reminder job: no appointments tomorrow")
		return nil
	}

	perDoctor := make(map[string]int)
	reminded := 0
	for _, appt := range upcoming {
		perDoctor[appt.DoctorID]++

		if appt.Email == "" && appt.Phone == "" {
			continue
		}
		doctor, ok := s.Doctors.Get(appt.DoctorID)
		if !ok {
			continue
		}
		if s.sender != nil {
			s.sender.SendAppointmentEmail(appt, doctor, StatusUpcoming)
			s.sender.SendAppointmentSMS(appt, doctor, StatusUpcoming)
			reminded++
		}
	}

	for doctorID, count := range perDoctor {
		log.Info().Str("doctor_id", doctorID).Int("appointments", count).Time("day", start).Msg("reminder job: schedule for tomorrow")
	}
	log.Info().Int("total", len(upcoming)).Int("reminded", reminded).Msg("reminder job: done")
	return nil
}
