package repository

import (
	"github.com/aulanet/aulanet-backend/internal/model"
)

const gradeCollection = "calificaciones"

type GradeRepository struct {
	store Collections
}

func NewGradeRepository(s Collections) *GradeRepository {
	return &GradeRepository{store: s}
}

func (r *GradeRepository) All() ([]model.Grade, error) {
	var grades []model.Grade
	if err := r.store.Load(gradeCollection, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// Find returns the grade for the (assignment, student) pair, or nil.
func (r *GradeRepository) Find(assignmentID int, studentID string) (*model.Grade, error) {
	grades, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range grades {
		if grades[i].AssignmentID == assignmentID && grades[i].StudentID == studentID {
			return &grades[i], nil
		}
	}
	return nil, nil
}

func (r *GradeRepository) ByStudent(studentID string) ([]model.Grade, error) {
	grades, err := r.All()
	if err != nil {
		return nil, err
	}
	mine := make([]model.Grade, 0, len(grades))
	for _, g := range grades {
		if g.StudentID == studentID {
			mine = append(mine, g)
		}
	}
	return mine, nil
}

// Upsert stores g under its composite key. An existing record is replaced in
// place, keeping its position in the collection; otherwise g is appended.
func (r *GradeRepository) Upsert(g model.Grade) error {
	unlock := r.store.Lock(gradeCollection)
	defer unlock()

	var grades []model.Grade
	if err := r.store.Load(gradeCollection, &grades); err != nil {
		return err
	}

	replaced := false
	for i := range grades {
		if grades[i].AssignmentID == g.AssignmentID && grades[i].StudentID == g.StudentID {
			grades[i] = g
			replaced = true
			break
		}
	}
	if !replaced {
		grades = append(grades, g)
	}
	return r.store.Save(gradeCollection, grades)
}

// RemoveByAssignment deletes every grade referencing the assignment.
func (r *GradeRepository) RemoveByAssignment(assignmentID int) error {
	unlock := r.store.Lock(gradeCollection)
	defer unlock()

	var grades []model.Grade
	if err := r.store.Load(gradeCollection, &grades); err != nil {
		return err
	}
	kept := grades[:0]
	for _, g := range grades {
		if g.AssignmentID != assignmentID {
			kept = append(kept, g)
		}
	}
	return r.store.Save(gradeCollection, kept)
}
