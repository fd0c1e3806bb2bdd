package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"consultorio/internal/entities"
	"consultorio/internal/repository"
	"consultorio/internal/service"
)

func TestSendUpcomingReminders(t *testing.T) {
	doctors := repository.NewDoctorRepository()
	appointments := repository.NewAppointmentRepository()
	doctorID := doctors.AddDoctor("John", "Smith")

	now := time.Now().UTC()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 10, 30, 0, 0, time.UTC)

	appointments.AddAppointment(entities.Appointment{
		DoctorID: doctorID,
		First:    "Claude",
		Last:     "Mann",
		DateTime: tomorrow,
		Kind:     "Follow-up",
	})
	// far future, outside the sweep window
	appointments.AddAppointment(entities.Appointment{
		DoctorID: doctorID,
		First:    "Jamie",
		Last:     "McMillan",
		DateTime: tomorrow.AddDate(0, 0, 7),
		Kind:     "Follow-up",
	})

	jobs := service.NewJobService(doctors, appointments, nil)
	require.NoError(t, jobs.SendUpcomingReminders())
}

func TestSendUpcomingRemindersEmptyDay(t *testing.T) {
	jobs := service.NewJobService(repository.NewDoctorRepository(), repository.NewAppointmentRepository(), nil)
	require.NoError(t, jobs.SendUpcomingReminders())
}
