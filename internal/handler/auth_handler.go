package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/model"
	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
	"github.com/aulanet/aulanet-backend/internal/validator"
)

type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService}
}

// RegisterTeacher godoc
// POST /api/v1/auth/register/teacher
func (h *AuthHandler) RegisterTeacher(c *gin.Context) {
	h.register(c, model.RoleTeacher)
}

// RegisterStudent godoc
// POST /api/v1/auth/register/student
func (h *AuthHandler) RegisterStudent(c *gin.Context) {
	h.register(c, model.RoleStudent)
}

func (h *AuthHandler) register(c *gin.Context, role model.Role) {
	var req model.RegisterUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Solicitud invalida", fields)
		return
	}

	if err := h.userService.Register(req, role); err != nil {
		failFrom(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Registro exitoso", nil)
}

// Login godoc
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, "Solicitud invalida", fields)
		return
	}

	user, err := h.userService.Login(req.ID, req.Password)
	if err != nil {
		failFrom(c, err)
		return
	}

	token, err := h.authService.GenerateToken(*user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	response.OK(c, http.StatusOK, fmt.Sprintf("Bienvenido, %s!", user.GivenNames), gin.H{
		"usuario": user,
		"token":   token,
	})
}
