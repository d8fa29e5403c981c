package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-slot-loader/internal/domain/slots"
	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
	"github.com/BruksfildServices01/barber-slot-loader/internal/httpresp"
	"github.com/BruksfildServices01/barber-slot-loader/internal/requestid"
	ucSlots "github.com/BruksfildServices01/barber-slot-loader/internal/usecase/slots"
)

type SlotsHandler struct {
	uc   *ucSlots.GetAvailable
	bare bool
}

func NewSlotsHandler(uc *ucSlots.GetAvailable, bare bool) *SlotsHandler {
	return &SlotsHandler{uc: uc, bare: bare}
}

// Available answers GET /slots?barber_id=&date=.
func (h *SlotsHandler) Available(c *gin.Context) {
	barberID := strings.TrimSpace(c.Query("barber_id"))
	date := strings.TrimSpace(c.Query("date"))

	if barberID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "Barber and date are required.")
		return
	}

	list, err := h.uc.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		if httperr.IsBusiness(err, ucSlots.CodeInvalidDate) {
			httperr.BadRequest(c, ucSlots.CodeInvalidDate, "Invalid date.")
			return
		}

		log.Printf("slots: availability failed for barber=%q date=%q request=%s: %v",
			barberID, date, requestid.From(c.Request.Context()), err)
		httperr.Internal(c, "availability_failed", "Failed to compute slots.")
		return
	}

	httpresp.Slots(c, list, h.bare)
}
