package booking

import (
	"context"
	"time"

	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/dto"
	"github.com/fadebook/barber-booking/internal/httperr"
)

type ListDayAppointments struct {
	repo domain.Repository
}

func NewListDayAppointments(repo domain.Repository) *ListDayAppointments {
	return &ListDayAppointments{repo: repo}
}

// Execute lists a barber's own day, ascending by slot, for the staff
// console.
func (uc *ListDayAppointments) Execute(
	ctx context.Context,
	staffUserID uint,
	date time.Time,
) ([]dto.BarberAppointmentDTO, error) {

	barber, err := uc.repo.GetBarberByUserID(ctx, staffUserID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, barber.ID, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.BarberAppointmentDTO{
			ID:              ap.ID,
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			CustomerName:    ap.Customer.User.Name,
			ServiceName:     ap.Service.Name,
			Notes:           ap.Notes,
		})
	}

	return out, nil
}
