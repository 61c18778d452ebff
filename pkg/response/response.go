package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the JSON shape shared by every non-list endpoint: a message, plus
// per-field details on validation failures.
type Body struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Message writes a success body.
func Message(c *gin.Context, status int, msg string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Body{Message: msg})
}

// Error writes a failure body and stops further handlers.
func Error(c *gin.Context, status int, msg string, details map[string]string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, Body{Message: msg, Details: details})
}
