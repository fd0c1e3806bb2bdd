package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"consultorio/internal/entities"
)

// AppointmentRepository keeps every appointment ever booked, soft-deleted
// ones included. The mutex guards the map itself; the capacity check in
// the booking service deliberately runs as a separate read, so two
// concurrent bookings can both pass it. Ideally this whole store would be
// a database query.
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]entities.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{appointments: make(map[string]entities.Appointment)}
}

// AddAppointment stores the appointment and returns its generated id.
// Validation happens upstream; storing cannot fail.
func (r *AppointmentRepository) AddAppointment(appt entities.Appointment) string {
	id := uuid.New().String()
	appt.ID = id
	appt.Deleted = false

	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[id] = appt
	return id
}

func (r *AppointmentRepository) Get(id string) (entities.Appointment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	appt, ok := r.appointments[id]
	return appt, ok
}

// SoftDelete marks the appointment as deleted and reports whether the id
// was known. Re-deleting an already deleted appointment just re-applies
// the flag.
func (r *AppointmentRepository) SoftDelete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appointments[id]
	if !ok {
		return false
	}
	appt.Deleted = true
	r.appointments[id] = appt
	return true
}

// CountAt counts non-deleted appointments for the doctor at exactly the
// given instant.
func (r *AppointmentRepository) CountAt(doctorID string, at time.Time) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, appt := range r.appointments {
		if appt.Deleted {
			continue
		}
		if appt.DoctorID != doctorID {
			continue
		}
		if appt.DateTime.Equal(at) {
			count++
		}
	}
	return count
}

// ListForDoctorOnDay returns the doctor's non-deleted appointments falling
// strictly inside (day 00:00, day+1 00:00). Both boundary instants are
// excluded, so an appointment at exactly midnight of the requested day
// does not appear.
func (r *AppointmentRepository) ListForDoctorOnDay(doctorID string, day time.Time) map[string]entities.Appointment {
	end := day.AddDate(0, 0, 1)

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make(map[string]entities.Appointment)
	for id, appt := range r.appointments {
		if appt.Deleted {
			continue
		}
		if appt.DoctorID != doctorID {
			continue
		}
		if !appt.DateTime.After(day) {
			continue
		}
		if !appt.DateTime.Before(end) {
			continue
		}
		matches[id] = appt
	}
	return matches
}

// ListBetween returns all non-deleted appointments with start <= datetime
// < end, across every doctor. Used by the reminder sweep.
func (r *AppointmentRepository) ListBetween(start, end time.Time) map[string]entities.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make(map[string]entities.Appointment)
	for id, appt := range r.appointments {
		if appt.Deleted {
			continue
		}
		if appt.DateTime.Before(start) {
			continue
		}
		if !appt.DateTime.Before(end) {
			continue
		}
		matches[id] = appt
	}
	return matches
}
