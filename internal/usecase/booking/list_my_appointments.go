package booking

import (
	"context"

	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/dto"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

// Execute lists the customer's appointments, newest first. A user who
// never booked simply has none.
func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.CustomerAppointmentDTO, error) {

	customer, err := uc.repo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return []dto.CustomerAppointmentDTO{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsForCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CustomerAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.CustomerAppointmentDTO{
			ID:              ap.ID,
			Reference:       ap.Reference,
			AppointmentDate: ap.AppointmentDate.Format("2006-01-02"),
			AppointmentTime: ap.AppointmentTime,
			Status:          ap.Status,
			BarberName:      ap.Barber.User.Name,
			BarbershopName:  ap.Barber.Barbershop.Name,
			ServiceName:     ap.Service.Name,
			ServicePrice:    ap.Service.Price,
			Notes:           ap.Notes,
			CreatedAt:       ap.CreatedAt,
		})
	}

	return out, nil
}
