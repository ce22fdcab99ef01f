package booking

import (
	"context"
	"time"

	"github.com/fadebook/barber-booking/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetBarberByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		userID uint,
	) (*models.Customer, error)

	GetCustomerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Customer, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists the row. The active-slot uniqueness
	// constraint lives in the store; a lost race comes back as a
	// ConflictError from the insert itself.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SlotTaken is the best-effort pre-check; the insert is the guard.
	SlotTaken(
		ctx context.Context,
		barberID uint,
		date time.Time,
		slot string,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointmentByReference(
		ctx context.Context,
		reference string,
		customerID uint,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability / listing --------

	// ListActiveTimes returns the "HH:MM" slots held by pending or
	// confirmed appointments for (barber, date), ascending.
	ListActiveTimes(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]string, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		barberID uint,
		date time.Time,
	) ([]models.Appointment, error)
}
