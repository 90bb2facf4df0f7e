package model

import "time"

// StudentStats is the dashboard summary for one student. TotalAssignments
// counts every assignment in the system, so Pending can go negative when a
// student still holds grades for assignments deleted underneath them.
type StudentStats struct {
	TotalAssignments int     `json:"total_tareas"`
	Graded           int     `json:"calificadas"`
	Pending          int     `json:"pendientes"`
	Average          float64 `json:"promedio"`
}

// Submission statuses for the per-assignment roster.
const (
	SubmissionStatusGraded  = "calificada"
	SubmissionStatusPending = "pendiente"
)

// Submission is one roster row: a student and their grade on an assignment,
// if any.
type Submission struct {
	StudentID   string     `json:"id"`
	GivenNames  string     `json:"nombres"`
	FamilyNames string     `json:"apellidos"`
	Score       *float64   `json:"nota"`
	Comment     string     `json:"comentario"`
	GradedAt    *time.Time `json:"fecha_calificacion"`
	Status      string     `json:"estado"`
}

// TeacherStats summarizes a teacher's catalog and grading activity.
type TeacherStats struct {
	TotalAssignments  int `json:"total_tareas"`
	TotalSubmissions  int `json:"total_entregas"`
	GradedSubmissions int `json:"entregas_calificadas"`
}
