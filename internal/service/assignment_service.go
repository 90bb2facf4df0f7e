package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/repository"
)

// AssignmentService implements the assignment catalog: creation, owner-only
// deletion with its grade cascade, and the two listings.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	gradeRepo      *repository.GradeRepository
	log            zerolog.Logger
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, gradeRepo *repository.GradeRepository, log zerolog.Logger) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		gradeRepo:      gradeRepo,
		log:            log.With().Str("component", "assignment_service").Logger(),
	}
}

// Create validates the payload and appends a new assignment owned by
// teacherID, returning the stored record.
func (s *AssignmentService) Create(req model.CreateAssignmentRequest, teacherID string) (*model.Assignment, error) {
	required := []struct {
		name  string
		value string
	}{
		{"titulo", req.Title},
		{"descripcion", req.Description},
		{"curso", req.Course},
		{"fechaEntrega", req.DueDate},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, validationErr("El campo %s es obligatorio", field.name)
		}
	}

	id, err := s.assignmentRepo.NextID()
	if err != nil {
		s.log.Error().Err(err).Msg("ID reservation failed")
		return nil, storeErr("Error al guardar la tarea")
	}

	assignment := model.Assignment{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Course:      req.Course,
		Kind:        req.Kind,
		DueDate:     req.DueDate,
		Points:      model.AssignmentDefaultPoints,
		TeacherID:   teacherID,
		Status:      model.AssignmentStatusActive,
		CreatedAt:   time.Now(),
	}
	if assignment.Kind == "" {
		assignment.Kind = model.AssignmentKindDefault
	}
	if req.Points != nil {
		assignment.Points = *req.Points
	}

	if err := s.assignmentRepo.Append(assignment); err != nil {
		s.log.Error().Err(err).Int("assignment_id", id).Msg("Assignment save failed")
		return nil, storeErr("Error al guardar la tarea")
	}

	s.log.Info().Int("assignment_id", id).Str("teacher_id", teacherID).Msg("Assignment created")
	return &assignment, nil
}

// Delete removes an assignment and cascades to every grade referencing it.
// Only the owning teacher may delete. The two collections are saved in
// sequence (assignments first); the cascade is not atomic across them.
func (s *AssignmentService) Delete(id int, teacherID string) error {
	assignment, err := s.assignmentRepo.FindByID(id)
	if err != nil {
		return storeErr("Error al leer los datos del sistema")
	}
	if assignment == nil {
		return notFoundErr("Tarea no encontrada")
	}
	if assignment.TeacherID != teacherID {
		return forbiddenErr("No tienes permiso para eliminar esta tarea")
	}

	if err := s.assignmentRepo.Remove(id); err != nil {
		s.log.Error().Err(err).Int("assignment_id", id).Msg("Assignment delete failed")
		return storeErr("Error al eliminar la tarea")
	}

	if err := s.gradeRepo.RemoveByAssignment(id); err != nil {
		// The assignment removal is already persisted; failing here leaves
		// orphaned grades behind.
		s.log.Error().Err(err).Int("assignment_id", id).Msg("Grade cascade failed")
	}

	s.log.Info().Int("assignment_id", id).Str("teacher_id", teacherID).Msg("Assignment deleted")
	return nil
}

// ListByTeacher returns the assignments owned by one teacher.
func (s *AssignmentService) ListByTeacher(teacherID string) ([]model.Assignment, error) {
	assignments, err := s.assignmentRepo.ByTeacher(teacherID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	return assignments, nil
}

// ListAll returns every assignment. This is the student view: there is no
// course or section filter, every active assignment is visible to everyone.
func (s *AssignmentService) ListAll() ([]model.Assignment, error) {
	assignments, err := s.assignmentRepo.All()
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	return assignments, nil
}
