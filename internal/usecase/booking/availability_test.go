package booking

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadebook/barber-booking/internal/cache"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/models"
)

func newAvailabilityUC(repo *fakeRepo) *GetAvailability {
	return NewGetAvailability(repo, cache.NewAvailability(nil))
}

func seedAppointment(repo *fakeRepo, barberID uint, date time.Time, slot string, status domain.Status) *models.Appointment {
	ap := &models.Appointment{
		ID:              repo.nextID,
		Reference:       "seed",
		BarberID:        barberID,
		AppointmentDate: date,
		AppointmentTime: slot,
		Status:          string(status),
	}
	repo.nextID++
	repo.appointments = append(repo.appointments, ap)
	return ap
}

func TestGetAvailability_FullDay(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvailabilityUC(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	times, err := uc.Execute(context.Background(), 1, date)
	require.NoError(t, err)

	// 09:00-18:00 on a 30-minute grid.
	require.Len(t, times, 18)
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "17:30", times[17])
	assert.True(t, sort.StringsAreSorted(times), "slots must stay ascending")
}

func TestGetAvailability_ExcludesActiveAppointments(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvailabilityUC(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedAppointment(repo, 1, date, "10:00", domain.StatusPending)

	times, err := uc.Execute(context.Background(), 1, date)
	require.NoError(t, err)

	assert.NotContains(t, times, "10:00")
	assert.Contains(t, times, "09:30")
	assert.Contains(t, times, "10:30")
	assert.Len(t, times, 17)
}

func TestGetAvailability_CancelledDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvailabilityUC(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ap := seedAppointment(repo, 1, date, "10:00", domain.StatusPending)

	times, err := uc.Execute(context.Background(), 1, date)
	require.NoError(t, err)
	assert.NotContains(t, times, "10:00")

	require.NoError(t, domain.Cancel(ap, time.Now()))

	times, err = uc.Execute(context.Background(), 1, date)
	require.NoError(t, err)
	assert.Contains(t, times, "10:00")
}

func TestGetAvailability_StatusFiltering(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvailabilityUC(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedAppointment(repo, 1, date, "09:00", domain.StatusPending)
	seedAppointment(repo, 1, date, "09:30", domain.StatusConfirmed)
	seedAppointment(repo, 1, date, "10:00", domain.StatusCompleted)
	seedAppointment(repo, 1, date, "10:30", domain.StatusCancelled)

	times, err := uc.Execute(context.Background(), 1, date)
	require.NoError(t, err)

	assert.NotContains(t, times, "09:00")
	assert.NotContains(t, times, "09:30")
	assert.Contains(t, times, "10:00")
	assert.Contains(t, times, "10:30")
}

func TestGetAvailability_OtherBarberUnaffected(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvailabilityUC(repo)

	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedAppointment(repo, 1, date, "10:00", domain.StatusPending)

	// Barber 2 shares the shop but has their own diary.
	times, err := uc.Execute(context.Background(), 2, date)
	require.NoError(t, err)
	assert.Contains(t, times, "10:00")
}

func TestGetAvailability_UnknownBarber(t *testing.T) {
	repo := newFakeRepo()
	uc := newAvailabilityUC(repo)

	_, err := uc.Execute(context.Background(), 99, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
