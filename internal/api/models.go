package api

import "consultorio/internal/entities"

// Doctors
type DoctorListResponse struct {
	Doctors map[string]entities.Doctor `json:"doctors"`
}

// Appointments
type AppointmentListResponse struct {
	Appointments map[string]entities.Appointment `json:"appointments"`
}
