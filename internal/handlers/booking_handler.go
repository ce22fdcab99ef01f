package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/httpresp"
	"github.com/fadebook/barber-booking/internal/middleware"
	ucBooking "github.com/fadebook/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	book     *ucBooking.BookAppointment
	cancel   *ucBooking.CancelAppointment
	get      *ucBooking.GetAppointment
	listMine *ucBooking.ListMyAppointments
}

func NewBookingHandler(
	book *ucBooking.BookAppointment,
	cancel *ucBooking.CancelAppointment,
	get *ucBooking.GetAppointment,
	listMine *ucBooking.ListMyAppointments,
) *BookingHandler {
	return &BookingHandler{
		book:     book,
		cancel:   cancel,
		get:      get,
		listMine: listMine,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	BarberID     uint   `json:"barber_id" binding:"required"`
	ServiceID    uint   `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:MM
	Notes        string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slot, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookAppointmentInput{
		UserID:       userID,
		BarbershopID: req.BarbershopID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		Date:         date,
		Slot:         slot,
		Notes:        req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST / CONFIRMATION
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	appointments, err := h.listMine.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *BookingHandler) GetByReference(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	reference := c.Param("reference")

	ap, err := h.get.Execute(c.Request.Context(), userID, reference)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	reference := c.Param("reference")

	ap, err := h.cancel.Execute(c.Request.Context(), userID, reference)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// mapBookingError keeps the engine's taxonomy visible to the UI:
// validation 400, lost slot race 409, bad transition 422.
func mapBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsValidation(err, "past_date"):
		httperr.BadRequest(c, "past_date", "Cannot book appointments for past dates.")
	case httperr.IsValidation(err, "too_far_in_advance"):
		httperr.BadRequest(c, "too_far_in_advance", "Cannot book appointments more than 30 days in advance.")
	case httperr.IsValidation(err, "barber_unavailable"):
		httperr.BadRequest(c, "barber_unavailable", "Barber is not available at this barbershop.")
	case httperr.IsValidation(err, "service_mismatch"):
		httperr.BadRequest(c, "service_mismatch", "Service does not belong to this barbershop.")
	case httperr.IsValidation(err, ""):
		httperr.BadRequest(c, err.Error(), "Invalid booking request.")
	case httperr.IsConflict(err):
		httperr.Conflict(c, "slot_taken", "That slot was just taken, please pick another time.")
	case httperr.IsState(err):
		httperr.UnprocessableEntity(c, "invalid_state", "Appointment cannot change to that status.")
	case httperr.IsNotFound(err):
		httperr.NotFound(c, err.Error(), "Not found.")
	default:
		httperr.Internal(c, "booking_failed", "Failed to process booking.")
	}
}
