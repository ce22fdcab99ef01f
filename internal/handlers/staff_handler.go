package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/httpresp"
	"github.com/fadebook/barber-booking/internal/middleware"
	ucBooking "github.com/fadebook/barber-booking/internal/usecase/booking"
)

type StaffHandler struct {
	confirm  *ucBooking.ConfirmAppointment
	complete *ucBooking.CompleteAppointment
	listDay  *ucBooking.ListDayAppointments
}

func NewStaffHandler(
	confirm *ucBooking.ConfirmAppointment,
	complete *ucBooking.CompleteAppointment,
	listDay *ucBooking.ListDayAppointments,
) *StaffHandler {
	return &StaffHandler{
		confirm:  confirm,
		complete: complete,
		listDay:  listDay,
	}
}

func (h *StaffHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *StaffHandler) Complete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *StaffHandler) ListDay(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

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

	appointments, err := h.listDay.Execute(c.Request.Context(), userID, date)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "barber_not_found", "No barber profile for this user.")
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, appointments)
}
