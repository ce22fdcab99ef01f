package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fadebook/barber-booking/internal/audit"
	"github.com/fadebook/barber-booking/internal/cache"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	// UserID is the authenticated principal. The engine never reads
	// ambient identity; callers resolve it and pass it in.
	UserID uint

	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	Date  time.Time // calendar date, midnight UTC
	Slot  domain.TimeOfDay
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	now   func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	availability *cache.Availability,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		audit: auditor,
		cache: availability,
		now:   time.Now,
	}
}

// WithNow replaces the clock, for tests.
func (uc *BookAppointment) WithNow(now func() time.Time) *BookAppointment {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the ordered validation pipeline; the first failing rule
// wins so error messages stay deterministic.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	today := dateOnly(uc.now().UTC())
	bookingDate := dateOnly(in.Date)

	// 1. No past dates.
	if bookingDate.Before(today) {
		return nil, httperr.ErrValidation("past_date")
	}

	// 2. At most 30 days ahead, boundary day allowed.
	if bookingDate.After(today.AddDate(0, 0, domain.MaxAdvanceDays)) {
		return nil, httperr.ErrValidation("too_far_in_advance")
	}

	// 3. Barber must belong to the shop being booked and be available.
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil {
		return nil, httperr.ErrValidation("barber_unavailable")
	}
	if barber.BarbershopID != in.BarbershopID || !barber.IsAvailable {
		return nil, httperr.ErrValidation("barber_unavailable")
	}

	// 4. Service must belong to the same shop.
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrValidation("service_mismatch")
	}

	// 5. Slot must be free. Best-effort read; the insert below is the
	// authoritative guard against a concurrent booking.
	slot := in.Slot.String()
	taken, err := uc.repo.SlotTaken(ctx, in.BarberID, bookingDate, slot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("slot_taken")
	}

	customer, err := uc.repo.GetOrCreateCustomer(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		CustomerID:      customer.ID,
		BarberID:        barber.ID,
		ServiceID:       service.ID,
		AppointmentDate: bookingDate,
		AppointmentTime: slot,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsConflict(err) {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: in.BarbershopID,
				UserID:       &in.UserID,
				Action:       "appointment_conflict",
				Entity:       "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      bookingDate.Format("2006-01-02"),
					"time":      slot,
				},
			})
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, barber.ID, bookingDate)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.UserID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
