package repository

import (
	"sync"

	"github.com/google/uuid"

	"consultorio/internal/entities"
)

type DoctorRepository struct {
	mu      sync.RWMutex
	doctors map[string]entities.Doctor
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{doctors: make(map[string]entities.Doctor)}
}

// AddDoctor registers a doctor and returns the generated id. Registration
// cannot fail.
func (r *DoctorRepository) AddDoctor(first, last string) string {
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[id] = entities.Doctor{ID: id, First: first, Last: last}
	return id
}

// Exists reports whether a doctor with the given id is registered. An
// empty or missing id is never registered.
func (r *DoctorRepository) Exists(id string) bool {
	if id == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.doctors[id]
	return ok
}

func (r *DoctorRepository) Get(id string) (entities.Doctor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.doctors[id]
	return d, ok
}

// List returns a snapshot of the full registry keyed by doctor id.
func (r *DoctorRepository) List() map[string]entities.Doctor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]entities.Doctor, len(r.doctors))
	for id, d := range r.doctors {
		out[id] = d
	}
	return out
}
