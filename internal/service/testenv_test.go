package service

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aulanet/aulanet-backend/internal/config"
	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/repository"
	"github.com/aulanet/aulanet-backend/internal/store"
)

// flakyStore wraps the real store and fails saves for selected collections,
// so tests can drive the persistence-failure paths without touching the
// filesystem.
type flakyStore struct {
	*store.Store
	failSaves map[string]bool
}

func (f *flakyStore) Save(name string, records any) error {
	if f.failSaves[name] {
		return errors.New("disk full")
	}
	return f.Store.Save(name, records)
}

type testEnv struct {
	auth        *AuthService
	users       *UserService
	assignments *AssignmentService
	grades      *GradeService
	reports     *ReportService

	userRepo       *repository.UserRepository
	assignmentRepo *repository.AssignmentRepository
	gradeRepo      *repository.GradeRepository

	flaky *flakyStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.New(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	flaky := &flakyStore{Store: st, failSaves: map[string]bool{}}

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	log := zerolog.Nop()

	userRepo := repository.NewUserRepository(flaky)
	assignmentRepo := repository.NewAssignmentRepository(flaky)
	gradeRepo := repository.NewGradeRepository(flaky)

	auth := NewAuthService(cfg)

	return &testEnv{
		auth:           auth,
		users:          NewUserService(userRepo, auth, log),
		assignments:    NewAssignmentService(assignmentRepo, gradeRepo, log),
		grades:         NewGradeService(gradeRepo, assignmentRepo, userRepo, log),
		reports:        NewReportService(userRepo, assignmentRepo, gradeRepo),
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		gradeRepo:      gradeRepo,
		flaky:          flaky,
	}
}

func teacherReq(id string) model.RegisterUserRequest {
	return model.RegisterUserRequest{
		ID:          id,
		GivenNames:  "Maria",
		FamilyNames: "Otero",
		DNI:         "12345678",
		Email:       id + "@example.com",
		Password:    "clave123",
		Specialty:   "Matematica",
	}
}

func studentReq(id string) model.RegisterUserRequest {
	return model.RegisterUserRequest{
		ID:          id,
		GivenNames:  "Juan",
		FamilyNames: "Perez",
		DNI:         "87654321",
		Email:       id + "@example.com",
		Password:    "clave456",
		GradeLevel:  "5to",
		Section:     "A",
	}
}

func (e *testEnv) mustRegisterTeacher(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, e.users.Register(teacherReq(id), model.RoleTeacher))
}

func (e *testEnv) mustRegisterStudent(t *testing.T, id string) {
	t.Helper()
	require.NoError(t, e.users.Register(studentReq(id), model.RoleStudent))
}

func (e *testEnv) mustCreateAssignment(t *testing.T, teacherID string) *model.Assignment {
	t.Helper()
	a, err := e.assignments.Create(model.CreateAssignmentRequest{
		Title:       "Ensayo",
		Description: "Ensayo sobre la independencia",
		Course:      "Historia",
		DueDate:     "2025-01-01",
	}, teacherID)
	require.NoError(t, err)
	return a
}

func (e *testEnv) mustAssignGrade(t *testing.T, assignmentID int, studentID, teacherID string, score float64) *model.Grade {
	t.Helper()
	g, err := e.grades.Assign(gradeReq(assignmentID, studentID, score), teacherID)
	require.NoError(t, err)
	return g
}

func gradeReq(assignmentID int, studentID string, score float64) model.AssignGradeRequest {
	return model.AssignGradeRequest{
		AssignmentID: &assignmentID,
		StudentID:    &studentID,
		Score:        model.Score{Value: score, Valid: true, Set: true},
	}
}

// requireKind asserts err is a service Error of the given kind with message.
func requireKind(t *testing.T, err error, kind Kind, message string) {
	t.Helper()
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok, "expected *service.Error, got %T", err)
	require.Equal(t, kind, svcErr.Kind)
	require.Equal(t, message, svcErr.Message)
}
