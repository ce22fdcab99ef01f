package booking

import (
	"context"

	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute fetches the confirmation view of one appointment, scoped to
// the customer who owns it.
func (uc *GetAppointment) Execute(
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

	return ap, nil
}
