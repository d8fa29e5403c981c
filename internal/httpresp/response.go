package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slot-loader/internal/domain/slots"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Slots writes list in the wrapped contract, or as a bare array when bare is set.
func Slots(c *gin.Context, list []slots.Slot, bare bool) {
	resp := slots.NewResponse(list)
	if bare {
		OK(c, resp.Slots)
		return
	}
	OK(c, resp)
}
