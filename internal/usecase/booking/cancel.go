package booking

import (
	"context"
	"time"

	"github.com/fadebook/barber-booking/internal/audit"
	"github.com/fadebook/barber-booking/internal/cache"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	availability *cache.Availability,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditor,
		cache: availability,
		now:   time.Now,
	}
}

func (uc *CancelAppointment) WithNow(now func() time.Time) *CancelAppointment {
	uc.now = now
	return uc
}

// Execute cancels the customer's own appointment. Only pending and
// confirmed appointments may be cancelled; re-cancelling is a state
// error, never a silent success.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	reference string,
) (*models.Appointment, error) {

	customer, err := uc.repo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	ap, err := uc.repo.GetAppointmentByReference(ctx, reference, customer.ID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.Cancel(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.BarberID, ap.AppointmentDate)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.Barber.BarbershopID,
		UserID:       &userID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
