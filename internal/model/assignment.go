package model

import "time"

const (
	// AssignmentKindDefault is used when the creator does not pick a kind.
	AssignmentKindDefault = "tarea"
	// AssignmentStatusActive is the only status the system produces today.
	AssignmentStatusActive = "activa"
	// AssignmentDefaultPoints is the maximum score when none is given.
	AssignmentDefaultPoints = 20
)

// Assignment is a piece of work published by a teacher. Only the owning
// teacher may delete or grade it.
type Assignment struct {
	ID          int       `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion"`
	Course      string    `json:"curso"`
	Kind        string    `json:"tipo"`
	DueDate     string    `json:"fechaEntrega"`
	Points      int       `json:"puntos"`
	TeacherID   string    `json:"profesor_id"`
	Status      string    `json:"estado"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// CreateAssignmentRequest carries the creation payload. Kind and Points are
// optional and defaulted by the service.
type CreateAssignmentRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	Course      string `json:"curso"`
	Kind        string `json:"tipo"`
	DueDate     string `json:"fechaEntrega"`
	Points      *int   `json:"puntos"`
}
