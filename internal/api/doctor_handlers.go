package api

import (
	"encoding/json"
	"net/http"

	"consultorio/internal/service"
)

type DoctorHandler struct {
	Service *service.BookingService
}

func NewDoctorHandler(svc *service.BookingService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DoctorListResponse{Doctors: h.Service.ListDoctors()})
}
