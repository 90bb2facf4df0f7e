package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/middleware"
	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
)

type ReportHandler struct {
	reportService *service.ReportService
}

func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Submissions godoc
// GET /api/v1/teacher/assignments/:id/submissions
func (h *ReportHandler) Submissions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "ID invalido")
		return
	}

	roster, err := h.reportService.SubmissionsForAssignment(id)
	if err != nil {
		failFrom(c, err)
		return
	}

	if roster == nil {
		roster = []model.Submission{}
	}
	response.OK(c, http.StatusOK, "OK", gin.H{"entregas": roster})
}

// TeacherStats godoc
// GET /api/v1/teacher/stats
func (h *ReportHandler) TeacherStats(c *gin.Context) {
	claims := middleware.Claims(c)
	stats, err := h.reportService.TeacherStats(claims.UserID)
	if err != nil {
		failFrom(c, err)
		return
	}

	response.OK(c, http.StatusOK, "OK", gin.H{"estadisticas": stats})
}

// StudentStats godoc
// GET /api/v1/student/stats
func (h *ReportHandler) StudentStats(c *gin.Context) {
	claims := middleware.Claims(c)
	stats, err := h.reportService.StudentStats(claims.UserID)
	if err != nil {
		failFrom(c, err)
		return
	}

	response.OK(c, http.StatusOK, "OK", gin.H{"estadisticas": stats})
}
