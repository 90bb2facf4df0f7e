package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: a success flag, a
// user-facing message, and optional payload keys merged alongside them.
// The "exito"/"mensaje" field names are the wire contract the web client
// consumes and must not change.

// OK sends a successful response. Extra payload keys are merged into the
// envelope next to the flag and message.
func OK(c *gin.Context, statusCode int, message string, payload gin.H) {
	c.JSON(statusCode, envelope(true, message, payload))
}

// Fail sends a failed response with just the flag and message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, envelope(false, message, nil))
}

// FailWithFields sends a failed response carrying field-level detail, used
// for malformed request bodies.
func FailWithFields(c *gin.Context, statusCode int, message string, fields map[string]string) {
	c.JSON(statusCode, envelope(false, message, gin.H{"campos": fields}))
}

// AbortFail aborts the middleware chain and sends a failed response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, envelope(false, message, nil))
}

func envelope(success bool, message string, payload gin.H) gin.H {
	body := gin.H{
		"exito":   success,
		"mensaje": message,
	}
	for k, v := range payload {
		body[k] = v
	}
	return body
}
