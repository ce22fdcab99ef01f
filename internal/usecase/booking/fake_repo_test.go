package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
	"github.com/fadebook/barber-booking/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo is an in-memory Repository. CreateAppointment enforces the
// same active-slot uniqueness the partial index does, so the usecases
// see the store's real contract.
type fakeRepo struct {
	shops        map[uint]models.Barbershop
	barbers      map[uint]models.Barber
	services     map[uint]models.Service
	customers    map[uint]models.Customer // keyed by user id
	appointments []*models.Appointment

	nextID uint

	// loseRace makes the next insert behave as if a concurrent booking
	// won between the pre-check and the insert.
	loseRace bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops: map[uint]models.Barbershop{
			1: {ID: 1, Name: "Fade Factory", OpeningTime: "09:00", ClosingTime: "18:00"},
			2: {ID: 2, Name: "Clip Joint", OpeningTime: "10:00", ClosingTime: "16:00"},
		},
		barbers: map[uint]models.Barber{
			1: {ID: 1, UserID: 101, BarbershopID: 1, IsAvailable: true},
			2: {ID: 2, UserID: 102, BarbershopID: 1, IsAvailable: false},
			3: {ID: 3, UserID: 103, BarbershopID: 2, IsAvailable: true},
		},
		services: map[uint]models.Service{
			1: {ID: 1, BarbershopID: 1, Name: "Haircut", DurationMinutes: 30, Price: 25},
			2: {ID: 2, BarbershopID: 2, Name: "Shave", DurationMinutes: 30, Price: 15},
		},
		customers: map[uint]models.Customer{},
		nextID:    1,
	}
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	shop, ok := f.shops[id]
	if !ok {
		return nil, errNotFound
	}
	return &shop, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	barber, ok := f.barbers[id]
	if !ok {
		return nil, errNotFound
	}
	barber.Barbershop = f.shops[barber.BarbershopID]
	return &barber, nil
}

func (f *fakeRepo) GetBarberByUserID(_ context.Context, userID uint) (*models.Barber, error) {
	for _, barber := range f.barbers {
		if barber.UserID == userID {
			barber.Barbershop = f.shops[barber.BarbershopID]
			return &barber, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.BarbershopID != barbershopID {
		return nil, errNotFound
	}
	return &svc, nil
}

func (f *fakeRepo) GetOrCreateCustomer(_ context.Context, userID uint) (*models.Customer, error) {
	if customer, ok := f.customers[userID]; ok {
		return &customer, nil
	}
	customer := models.Customer{ID: f.nextID, UserID: userID}
	f.nextID++
	f.customers[userID] = customer
	return &customer, nil
}

func (f *fakeRepo) GetCustomerByUserID(_ context.Context, userID uint) (*models.Customer, error) {
	customer, ok := f.customers[userID]
	if !ok {
		return nil, errNotFound
	}
	return &customer, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if f.loseRace {
		f.loseRace = false
		return httperr.ErrConflict("slot_taken")
	}

	for _, existing := range f.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.AppointmentDate.Equal(ap.AppointmentDate) &&
			existing.AppointmentTime == ap.AppointmentTime &&
			domain.Status(existing.Status).IsActive() {
			return httperr.ErrConflict("slot_taken")
		}
	}

	ap.ID = f.nextID
	f.nextID++
	ap.CreatedAt = time.Now()
	f.appointments = append(f.appointments, ap)
	return nil
}

func (f *fakeRepo) SlotTaken(_ context.Context, barberID uint, date time.Time, slot string) (bool, error) {
	for _, ap := range f.appointments {
		if ap.BarberID == barberID &&
			ap.AppointmentDate.Equal(date) &&
			ap.AppointmentTime == slot &&
			domain.Status(ap.Status).IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetAppointmentByReference(_ context.Context, reference string, customerID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.Reference == reference && ap.CustomerID == customerID {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, appointmentID, barberID uint) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.BarberID == barberID {
			return ap, nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range f.appointments {
		if existing.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListActiveTimes(_ context.Context, barberID uint, date time.Time) ([]string, error) {
	var times []string
	for _, ap := range f.appointments {
		if ap.BarberID == barberID &&
			ap.AppointmentDate.Equal(date) &&
			domain.Status(ap.Status).IsActive() {
			times = append(times, ap.AppointmentTime)
		}
	}
	return times, nil
}

func (f *fakeRepo) ListAppointmentsForCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForDay(_ context.Context, barberID uint, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.AppointmentDate.Equal(date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
