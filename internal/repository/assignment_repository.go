package repository

import (
	"github.com/aulanet/aulanet-backend/internal/model"
)

const assignmentCollection = "tareas"

type AssignmentRepository struct {
	store Collections
}

func NewAssignmentRepository(s Collections) *AssignmentRepository {
	return &AssignmentRepository{store: s}
}

func (r *AssignmentRepository) All() ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := r.store.Load(assignmentCollection, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *AssignmentRepository) FindByID(id int) (*model.Assignment, error) {
	assignments, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range assignments {
		if assignments[i].ID == id {
			return &assignments[i], nil
		}
	}
	return nil, nil
}

func (r *AssignmentRepository) ByTeacher(teacherID string) ([]model.Assignment, error) {
	assignments, err := r.All()
	if err != nil {
		return nil, err
	}
	owned := make([]model.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.TeacherID == teacherID {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

// NextID reserves a fresh assignment identifier. The counter never shrinks,
// so IDs freed by deletions are not reissued.
func (r *AssignmentRepository) NextID() (int, error) {
	return r.store.NextID(assignmentCollection)
}

func (r *AssignmentRepository) Append(a model.Assignment) error {
	unlock := r.store.Lock(assignmentCollection)
	defer unlock()

	var assignments []model.Assignment
	if err := r.store.Load(assignmentCollection, &assignments); err != nil {
		return err
	}
	assignments = append(assignments, a)
	return r.store.Save(assignmentCollection, assignments)
}

// Remove deletes the assignment with the given ID, if present.
func (r *AssignmentRepository) Remove(id int) error {
	unlock := r.store.Lock(assignmentCollection)
	defer unlock()

	var assignments []model.Assignment
	if err := r.store.Load(assignmentCollection, &assignments); err != nil {
		return err
	}
	kept := assignments[:0]
	for _, a := range assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return r.store.Save(assignmentCollection, kept)
}
