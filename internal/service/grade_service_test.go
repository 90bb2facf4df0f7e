package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aulanet/aulanet-backend/internal/model"
)

func TestAssignGradeUpsertKeepsOneRecordPerPair(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterTeacher(t, "T1")
	env.mustRegisterStudent(t, "S1")
	a := env.mustCreateAssignment(t, "T1")

	first := env.mustAssignGrade(t, a.ID, "S1", "T1", 12)

	req := gradeReq(a.ID, "S1", 17)
	req.Comment = "Mucho mejor"
	second, err := env.grades.Assign(req, "T1")
	require.NoError(t, err)

	all, err := env.gradeRepo.All()
	require.NoError(t, err)
	require.Len(t, all, 1)

	assert.Equal(t, 17.0, all[0].Score)
	assert.Equal(t, "Mucho mejor", all[0].Comment)
	assert.False(t, second.GradedAt.Before(first.GradedAt))
}

func TestAssignGradeScoreZeroIsPresent(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterTeacher(t, "T1")
	env.mustRegisterStudent(t, "S1")
	a := env.mustCreateAssignment(t, "T1")

	g := env.mustAssignGrade(t, a.ID, "S1", "T1", 0)
	assert.Equal(t, 0.0, g.Score)
}

func TestAssignGradeMissingFields(t *testing.T) {
	assignmentID := 1
	studentID := "S1"
	score := model.Score{Value: 15, Valid: true, Set: true}

	tests := []struct {
		name    string
		req     model.AssignGradeRequest
		message string
	}{
		{"tarea_id", model.AssignGradeRequest{StudentID: &studentID, Score: score}, "El campo tarea_id es obligatorio"},
		{"estudiante_id", model.AssignGradeRequest{AssignmentID: &assignmentID, Score: score}, "El campo estudiante_id es obligatorio"},
		{"nota", model.AssignGradeRequest{AssignmentID: &assignmentID, StudentID: &studentID}, "El campo nota es obligatorio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.grades.Assign(tt.req, "T1")
			requireKind(t, err, KindValidation, tt.message)
		})
	}
}

func TestAssignGradeScoreValidation(t *testing.T) {
	tests := []struct {
		name    string
		score   model.Score
		message string
	}{
		{"non numeric", model.Score{Set: true}, "Nota invalida"},
		{"below range", model.Score{Value: -1, Valid: true, Set: true}, "La nota debe estar entre 0 y 20"},
		{"above range", model.Score{Value: 20.5, Valid: true, Set: true}, "La nota debe estar entre 0 y 20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			assignmentID := 1
			studentID := "S1"
			_, err := env.grades.Assign(model.AssignGradeRequest{
				AssignmentID: &assignmentID,
				StudentID:    &studentID,
				Score:        tt.score,
			}, "T1")
			requireKind(t, err, KindValidation, tt.message)
		})
	}
}

func TestAssignGradeSaveFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterTeacher(t, "T1")
	env.mustRegisterStudent(t, "S1")
	a := env.mustCreateAssignment(t, "T1")
	env.flaky.failSaves["calificaciones"] = true

	_, err := env.grades.Assign(gradeReq(a.ID, "S1", 15), "T1")
	requireKind(t, err, KindStore, "Error al guardar la calificacion")
}

func TestAssignGradeUnknownAssignment(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterStudent(t, "S1")

	_, err := env.grades.Assign(gradeReq(42, "S1", 15), "T1")
	requireKind(t, err, KindNotFound, "Tarea no encontrada")
}

func TestAssignGradeForbiddenForNonOwner(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterTeacher(t, "T1")
	env.mustRegisterStudent(t, "S1")
	a := env.mustCreateAssignment(t, "T1")

	_, err := env.grades.Assign(gradeReq(a.ID, "S1", 15), "T2")
	requireKind(t, err, KindForbidden, "No tienes permiso para calificar esta tarea")

	// No grade was written.
	all, repoErr := env.gradeRepo.All()
	require.NoError(t, repoErr)
	assert.Empty(t, all)
}

func TestAssignGradeRequiresStudentRole(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterTeacher(t, "T1")
	env.mustRegisterTeacher(t, "T2")
	a := env.mustCreateAssignment(t, "T1")

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.grades.Assign(gradeReq(a.ID, "nadie", 15), "T1")
		requireKind(t, err, KindNotFound, "Estudiante no encontrado")
	})

	t.Run("teacher as target", func(t *testing.T) {
		_, err := env.grades.Assign(gradeReq(a.ID, "T2", 15), "T1")
		requireKind(t, err, KindNotFound, "Estudiante no encontrado")
	})
}

func TestGetAbsentGradeIsNil(t *testing.T) {
	env := newTestEnv(t)

	g, err := env.grades.Get(1, "S1")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestListForStudentFiltersOwner(t *testing.T) {
	env := newTestEnv(t)
	env.mustRegisterTeacher(t, "T1")
	env.mustRegisterStudent(t, "S1")
	env.mustRegisterStudent(t, "S2")
	a := env.mustCreateAssignment(t, "T1")

	env.mustAssignGrade(t, a.ID, "S1", "T1", 15)
	env.mustAssignGrade(t, a.ID, "S2", "T1", 10)

	mine, err := env.grades.ListForStudent("S1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "S1", mine[0].StudentID)
}
