package api

import (
	"github.com/gorilla/mux"

	"consultorio/internal/service"
)

// NewRouter registers the public endpoints on a fresh mux router.
func NewRouter(booking *service.BookingService) *mux.Router {
	doctorHandler := NewDoctorHandler(booking)
	appointmentHandler := NewAppointmentHandler(booking)

	r := mux.NewRouter()
	r.HandleFunc("/doctors", doctorHandler.ListDoctors).Methods("GET")
	r.HandleFunc("/appointments", appointmentHandler.ListAppointments).Methods("GET")
	r.HandleFunc("/appointments", appointmentHandler.CreateAppointment).Methods("POST")
	r.HandleFunc("/appointments", appointmentHandler.DeleteAppointment).Methods("DELETE")
	return r
}
