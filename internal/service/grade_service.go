package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/repository"
)

// GradeService implements grading with its cross-collection rules: the
// assignment must exist and belong to the grading teacher, the student must
// exist and actually be a student. Grading the same pair twice replaces the
// earlier record.
type GradeService struct {
	gradeRepo      *repository.GradeRepository
	assignmentRepo *repository.AssignmentRepository
	userRepo       *repository.UserRepository
	log            zerolog.Logger
}

func NewGradeService(gradeRepo *repository.GradeRepository, assignmentRepo *repository.AssignmentRepository, userRepo *repository.UserRepository, log zerolog.Logger) *GradeService {
	return &GradeService{
		gradeRepo:      gradeRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		log:            log.With().Str("component", "grade_service").Logger(),
	}
}

// Assign upserts a grade for (assignment, student) on behalf of teacherID.
func (s *GradeService) Assign(req model.AssignGradeRequest, teacherID string) (*model.Grade, error) {
	// Presence, not truthiness: assignment 0 or score 0 still count as given.
	if req.AssignmentID == nil {
		return nil, validationErr("El campo tarea_id es obligatorio")
	}
	if req.StudentID == nil {
		return nil, validationErr("El campo estudiante_id es obligatorio")
	}
	if !req.Score.Set {
		return nil, validationErr("El campo nota es obligatorio")
	}

	if !req.Score.Valid {
		return nil, validationErr("Nota invalida")
	}
	score := req.Score.Value
	if score < 0 || score > 20 {
		return nil, validationErr("La nota debe estar entre 0 y 20")
	}

	assignment, err := s.assignmentRepo.FindByID(*req.AssignmentID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	if assignment == nil {
		return nil, notFoundErr("Tarea no encontrada")
	}
	if assignment.TeacherID != teacherID {
		return nil, forbiddenErr("No tienes permiso para calificar esta tarea")
	}

	student, err := s.userRepo.FindByID(*req.StudentID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	if student == nil || student.Role != model.RoleStudent {
		return nil, notFoundErr("Estudiante no encontrado")
	}

	grade := model.Grade{
		AssignmentID: *req.AssignmentID,
		StudentID:    *req.StudentID,
		Score:        score,
		Comment:      req.Comment,
		GradedAt:     time.Now(),
	}

	if err := s.gradeRepo.Upsert(grade); err != nil {
		s.log.Error().Err(err).
			Int("assignment_id", grade.AssignmentID).
			Str("student_id", grade.StudentID).
			Msg("Grade save failed")
		return nil, storeErr("Error al guardar la calificacion")
	}

	s.log.Info().
		Int("assignment_id", grade.AssignmentID).
		Str("student_id", grade.StudentID).
		Float64("score", score).
		Msg("Grade assigned")
	return &grade, nil
}

// Get returns the grade for the composite key, or nil when ungraded.
func (s *GradeService) Get(assignmentID int, studentID string) (*model.Grade, error) {
	grade, err := s.gradeRepo.Find(assignmentID, studentID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	return grade, nil
}

// ListForStudent returns every grade belonging to one student.
func (s *GradeService) ListForStudent(studentID string) ([]model.Grade, error) {
	grades, err := s.gradeRepo.ByStudent(studentID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	return grades, nil
}
