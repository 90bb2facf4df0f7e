package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Grade is one score for one student on one assignment. The pair
// (tarea_id, estudiante_id) is the identity: assigning again replaces the
// existing record.
type Grade struct {
	AssignmentID int       `json:"tarea_id"`
	StudentID    string    `json:"estudiante_id"`
	Score        float64   `json:"nota"`
	Comment      string    `json:"comentario"`
	GradedAt     time.Time `json:"fecha_calificacion"`
}

// Score accepts either a JSON number or a numeric string, mirroring the
// loosely-typed payloads the web client sends. Set records whether the field
// appeared at all, so a legitimate 0 is not mistaken for "missing".
type Score struct {
	Value float64
	Valid bool
	Set   bool
}

func (s *Score) UnmarshalJSON(b []byte) error {
	s.Set = true

	// json.Unmarshal treats null as a no-op for numeric targets, which would
	// read as a valid 0 here.
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		s.Value, s.Valid = f, true
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			s.Value, s.Valid = f, true
		}
	}
	// Anything else (null, object, non-numeric string) stays Valid=false.
	return nil
}

// AssignGradeRequest carries the grading payload. AssignmentID is a pointer
// for the same reason Score tracks Set: presence matters, zero is not absent.
type AssignGradeRequest struct {
	AssignmentID *int    `json:"tarea_id"`
	StudentID    *string `json:"estudiante_id"`
	Score        Score   `json:"nota"`
	Comment      string  `json:"comentario"`
}
