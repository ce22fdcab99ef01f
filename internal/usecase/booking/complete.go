package booking

import (
	"context"
	"time"

	"github.com/fadebook/barber-booking/internal/audit"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/models"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditor,
		now:   time.Now,
	}
}

func (uc *CompleteAppointment) WithNow(now func() time.Time) *CompleteAppointment {
	uc.now = now
	return uc
}

// Execute is the staff action moving confirmed -> completed.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	staffUserID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarberByUserID(ctx, staffUserID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	ap, err := uc.repo.GetAppointmentForBarber(ctx, appointmentID, barber.ID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barber.BarbershopID,
		UserID:       &staffUserID,
		Action:       "appointment_completed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
