package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/middleware"
	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
	"github.com/aulanet/aulanet-backend/internal/validator"
)

type GradeHandler struct {
	gradeService *service.GradeService
}

func NewGradeHandler(gradeService *service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gradeService}
}

// Assign godoc
// POST /api/v1/teacher/grades
func (h *GradeHandler) Assign(c *gin.Context) {
	var req model.AssignGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Solicitud invalida", fields)
		return
	}

	claims := middleware.Claims(c)
	grade, err := h.gradeService.Assign(req, claims.UserID)
	if err != nil {
		failFrom(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Calificacion asignada exitosamente", gin.H{
		"calificacion": grade,
	})
}

// ListMine godoc
// GET /api/v1/student/grades
func (h *GradeHandler) ListMine(c *gin.Context) {
	claims := middleware.Claims(c)
	grades, err := h.gradeService.ListForStudent(claims.UserID)
	if err != nil {
		failFrom(c, err)
		return
	}

	if grades == nil {
		grades = []model.Grade{}
	}
	response.OK(c, http.StatusOK, "OK", gin.H{"calificaciones": grades})
}
