package service

import (
	"math"

	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/repository"
)

// ReportService derives read-only views over the three collections. It never
// mutates anything.
type ReportService struct {
	userRepo       *repository.UserRepository
	assignmentRepo *repository.AssignmentRepository
	gradeRepo      *repository.GradeRepository
}

func NewReportService(userRepo *repository.UserRepository, assignmentRepo *repository.AssignmentRepository, gradeRepo *repository.GradeRepository) *ReportService {
	return &ReportService{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		gradeRepo:      gradeRepo,
	}
}

// StudentStats summarizes a student's standing. The total counts every
// assignment in the system, so pending can go negative when grades outlive
// their deleted assignment.
func (s *ReportService) StudentStats(studentID string) (*model.StudentStats, error) {
	assignments, err := s.assignmentRepo.All()
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	grades, err := s.gradeRepo.ByStudent(studentID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}

	var average float64
	if len(grades) > 0 {
		var sum float64
		for _, g := range grades {
			sum += g.Score
		}
		average = math.Round(sum/float64(len(grades))*100) / 100
	}

	return &model.StudentStats{
		TotalAssignments: len(assignments),
		Graded:           len(grades),
		Pending:          len(assignments) - len(grades),
		Average:          average,
	}, nil
}

// SubmissionsForAssignment builds the grading roster: one row per student
// account, graded or not.
func (s *ReportService) SubmissionsForAssignment(assignmentID int) ([]model.Submission, error) {
	users, err := s.userRepo.All()
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	grades, err := s.gradeRepo.All()
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}

	byStudent := make(map[string]model.Grade, len(grades))
	for _, g := range grades {
		if g.AssignmentID == assignmentID {
			byStudent[g.StudentID] = g
		}
	}

	var roster []model.Submission
	for _, u := range users {
		if u.Role != model.RoleStudent {
			continue
		}
		row := model.Submission{
			StudentID:   u.ID,
			GivenNames:  u.GivenNames,
			FamilyNames: u.FamilyNames,
			Comment:     "",
			Status:      model.SubmissionStatusPending,
		}
		if g, ok := byStudent[u.ID]; ok {
			score := g.Score
			gradedAt := g.GradedAt
			row.Score = &score
			row.Comment = g.Comment
			row.GradedAt = &gradedAt
			row.Status = model.SubmissionStatusGraded
		}
		roster = append(roster, row)
	}
	return roster, nil
}

// TeacherStats counts a teacher's assignments and the grade records under
// them. Total and graded submissions count the same records: every stored
// grade carries a score, there is no ungraded submission entity.
func (s *ReportService) TeacherStats(teacherID string) (*model.TeacherStats, error) {
	assignments, err := s.assignmentRepo.ByTeacher(teacherID)
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}
	grades, err := s.gradeRepo.All()
	if err != nil {
		return nil, storeErr("Error al leer los datos del sistema")
	}

	owned := make(map[int]bool, len(assignments))
	for _, a := range assignments {
		owned[a.ID] = true
	}

	submissions := 0
	for _, g := range grades {
		if owned[g.AssignmentID] {
			submissions++
		}
	}

	return &model.TeacherStats{
		TotalAssignments:  len(assignments),
		TotalSubmissions:  submissions,
		GradedSubmissions: submissions,
	}, nil
}
