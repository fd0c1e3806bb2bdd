package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"consultorio/internal/entities"
	apperrors "consultorio/internal/errors"
	"consultorio/internal/service"
)

type AppointmentHandler struct {
	Service *service.BookingService
}

func NewAppointmentHandler(svc *service.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ListAppointments returns a doctor's non-deleted appointments for the day
// given in the datetime query parameter (YYYY-MM-DD).
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get("doctor_id")
	date := r.URL.Query().Get("datetime")

	appointments, err := h.Service.ListAppointmentsForDay(doctorID, date)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AppointmentListResponse{Appointments: appointments})
}

// CreateAppointment books an appointment from query parameters. On success
// the body is the plain text "Success"; the created record is not returned.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := entities.AppointmentRequest{
		DoctorID: q.Get("doctor_id"),
		DateTime: q.Get("datetime"),
		Kind:     q.Get("kind"),
		First:    q.Get("first"),
		Last:     q.Get("last"),
		Email:    q.Get("email"),
		Phone:    q.Get("phone"),
	}

	if err := h.Service.BookAppointment(req); err != nil {
		writeError(w, err)
		return
	}
	fmt.Fprint(w, "Success")
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("appointment_id")

	if err := h.Service.CancelAppointment(id); err != nil {
		writeError(w, err)
		return
	}
	fmt.Fprint(w, "Success")
}

func writeError(w http.ResponseWriter, err error) {
	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Message, httpErr.Code)
		return
	}
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
