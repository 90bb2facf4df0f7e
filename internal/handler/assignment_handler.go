package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/middleware"
	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
	"github.com/aulanet/aulanet-backend/internal/validator"
)

type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// Create godoc
// POST /api/v1/teacher/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Solicitud invalida", fields)
		return
	}

	claims := middleware.Claims(c)
	assignment, err := h.assignmentService.Create(req, claims.UserID)
	if err != nil {
		failFrom(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Tarea creada exitosamente", gin.H{
		"tarea_id": assignment.ID,
		"tarea":    assignment,
	})
}

// Delete godoc
// DELETE /api/v1/teacher/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "ID invalido")
		return
	}

	claims := middleware.Claims(c)
	if err := h.assignmentService.Delete(id, claims.UserID); err != nil {
		failFrom(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Tarea eliminada exitosamente", nil)
}

// ListMine godoc
// GET /api/v1/teacher/assignments
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	claims := middleware.Claims(c)
	assignments, err := h.assignmentService.ListByTeacher(claims.UserID)
	if err != nil {
		failFrom(c, err)
		return
	}

	if assignments == nil {
		assignments = []model.Assignment{}
	}
	response.OK(c, http.StatusOK, "OK", gin.H{"tareas": assignments})
}

// ListAll godoc
// GET /api/v1/student/assignments
func (h *AssignmentHandler) ListAll(c *gin.Context) {
	assignments, err := h.assignmentService.ListAll()
	if err != nil {
		failFrom(c, err)
		return
	}

	if assignments == nil {
		assignments = []model.Assignment{}
	}
	response.OK(c, http.StatusOK, "OK", gin.H{"tareas": assignments})
}
