package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyRequestID))
	})
	return r
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	r := newRequestIDRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(rec, req)

	echoed := rec.Header().Get("X-Request-ID")
	require.NoError(t, uuid.Validate(echoed))
	assert.Equal(t, echoed, rec.Body.String())
}

func TestRequestIDKeepsInboundUUID(t *testing.T) {
	r := newRequestIDRouter()
	inbound := uuid.New().String()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", inbound)
	r.ServeHTTP(rec, req)

	assert.Equal(t, inbound, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDReplacesNonUUID(t *testing.T) {
	r := newRequestIDRouter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "no-es-un-uuid")
	r.ServeHTTP(rec, req)

	echoed := rec.Header().Get("X-Request-ID")
	assert.NotEqual(t, "no-es-un-uuid", echoed)
	require.NoError(t, uuid.Validate(echoed))
}
