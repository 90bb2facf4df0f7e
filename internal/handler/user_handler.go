package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListStudents godoc
// GET /api/v1/teacher/students
func (h *UserHandler) ListStudents(c *gin.Context) {
	students, err := h.userService.ListStudents()
	if err != nil {
		failFrom(c, err)
		return
	}

	if students == nil {
		students = []model.User{}
	}
	response.OK(c, http.StatusOK, "OK", gin.H{"estudiantes": students})
}
