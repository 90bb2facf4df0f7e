package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aulanet/aulanet-backend/internal/response"
	"github.com/aulanet/aulanet-backend/internal/service"
)

// failFrom maps a service error to an HTTP status and writes the envelope.
func failFrom(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		response.Fail(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Kind {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindConflict:
		status = http.StatusConflict
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindUnauthorized:
		status = http.StatusUnauthorized
	case service.KindForbidden:
		status = http.StatusForbidden
	case service.KindStore:
		status = http.StatusInternalServerError
	}

	response.Fail(c, status, svcErr.Message)
}
