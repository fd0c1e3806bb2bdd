package service

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"consultorio/internal/entities"
	apperrors "consultorio/internal/errors"
	"consultorio/internal/repository"
	"consultorio/internal/utils"
)

const (
	// 12-hour clock with an am/pm suffix. The input is lowercased before
	// parsing so "AM"/"PM" are accepted as well.
	BookingTimeLayout = "2006-01-02 3:04 pm"
	DayLayout         = "2006-01-02"
)

type BookingService struct {
	Doctors      *repository.DoctorRepository
	Appointments *repository.AppointmentRepository
	sender       *SenderService
}

// NewBookingService wires the booking pipeline. sender may be nil, in
// which case no confirmations are sent.
func NewBookingService(doctors *repository.DoctorRepository, appointments *repository.AppointmentRepository, sender *SenderService) *BookingService {
	return &BookingService{
		Doctors:      doctors,
		Appointments: appointments,
		sender:       sender,
	}
}

func (s *BookingService) ListDoctors() map[string]entities.Doctor {
	return s.Doctors.List()
}

// BookAppointment validates a booking request and stores the appointment.
// Checks run in a fixed order: doctor, datetime format, 15-minute grid,
// slot capacity, kind. The capacity check is best-effort: it rejects only
// once more than 2 appointments already occupy the slot, and it is not
// atomic with the insert.
func (s *BookingService) BookAppointment(req entities.AppointmentRequest) error {
	if !s.Doctors.Exists(req.DoctorID) {
		return apperrors.NotFound("Doctor with that ID does not exist")
	}

	at, err := time.Parse(BookingTimeLayout, strings.ToLower(req.DateTime))
	if err != nil {
		return apperrors.InvalidArgument("'datetime' must be in format YYYY-MM-DD HH:MM am/pm")
	}

	if at.Minute()%15 != 0 {
		return apperrors.InvalidArgument("Appointment must be on 15 minute interval")
	}

	if s.Appointments.CountAt(req.DoctorID, at) > 2 {
		return apperrors.Conflict("Doctor with this id is fully booked for this time slot")
	}

	if !utils.IsValidKind(req.Kind) {
		return apperrors.InvalidArgument("Appointment kind must be either 'New Patient' or 'Follow-up'")
	}

	appt := entities.Appointment{
		DoctorID: req.DoctorID,
		First:    req.First,
		Last:     req.Last,
		DateTime: at,
		Kind:     req.Kind,
		Email:    req.Email,
		Phone:    req.Phone,
	}
	id := s.Appointments.AddAppointment(appt)
	appt.ID = id

	log.Info().
		Str("appointment_id", id).
		Str("doctor_id", req.DoctorID).
		Time("datetime", at).
		Msg("appointment booked")

	if s.sender != nil {
		if doctor, ok := s.Doctors.Get(req.DoctorID); ok {
			s.sender.SendAppointmentEmail(appt, doctor, StatusConfirmed)
			s.sender.SendAppointmentSMS(appt, doctor, StatusConfirmed)
		}
	}
	return nil
}

// ListAppointmentsForDay returns the doctor's non-deleted appointments for
// the given YYYY-MM-DD day, keyed by appointment id.
func (s *BookingService) ListAppointmentsForDay(doctorID, date string) (map[string]entities.Appointment, error) {
	if !s.Doctors.Exists(doctorID) {
		return nil, apperrors.NotFound("Doctor with that ID does not exist")
	}

	day, err := time.Parse(DayLayout, date)
	if err != nil {
		return nil, apperrors.InvalidArgument("'datetime' must be in format YYYY-MM-DD")
	}

	return s.Appointments.ListForDoctorOnDay(doctorID, day), nil
}

// CancelAppointment soft-deletes the appointment. Cancelling twice
// succeeds both times; the record itself is never removed.
func (s *BookingService) CancelAppointment(id string) error {
	appt, ok := s.Appointments.Get(id)
	if !ok {
		return apperrors.NotFound("Appointment with that ID does not exist")
	}

	s.Appointments.SoftDelete(id)
	log.Info().Str("appointment_id", id).Msg("appointment cancelled")

	if s.sender != nil && !appt.Deleted {
		if doctor, ok := s.Doctors.Get(appt.DoctorID); ok {
			s.sender.SendAppointmentEmail(appt, doctor, StatusCancelled)
			s.sender.SendAppointmentSMS(appt, doctor, StatusCancelled)
		}
	}
	return nil
}
