package httperr

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the error envelope the slots server writes and the
// slots client reads back for diagnostics.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e HTTPError) String() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
