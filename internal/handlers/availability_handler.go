package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/barber-booking/internal/httperr"
	ucBooking "github.com/fadebook/barber-booking/internal/usecase/booking"
)

type AvailabilityHandler struct {
	availability *ucBooking.GetAvailability
}

func NewAvailabilityHandler(availability *ucBooking.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// AvailableTimes answers GET /api/barbers/:id/available-times?date=YYYY-MM-DD
// with the free "HH:MM" slots for that barber and date.
func (h *AvailabilityHandler) AvailableTimes(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	times, err := h.availability.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to compute available times.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":            dateStr,
		"available_times": times,
	})
}
