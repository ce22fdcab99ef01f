package booking

import (
	"context"

	"github.com/fadebook/barber-booking/internal/audit"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditor,
	}
}

// Execute is the staff action moving pending -> confirmed. The barber
// may only touch their own appointments.
func (uc *ConfirmAppointment) Execute(
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

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barber.BarbershopID,
		UserID:       &staffUserID,
		Action:       "appointment_confirmed",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
