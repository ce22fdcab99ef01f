package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadebook/barber-booking/internal/cache"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func day(offset int) time.Time {
	return time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func slot(t *testing.T, s string) domain.TimeOfDay {
	t.Helper()
	tod, err := domain.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func newBookUC(repo *fakeRepo) *BookAppointment {
	return NewBookAppointment(repo, nil, cache.NewAvailability(nil)).WithNow(fixedNow)
}

func validInput(t *testing.T) BookAppointmentInput {
	return BookAppointmentInput{
		UserID:       42,
		BarbershopID: 1,
		BarberID:     1,
		ServiceID:    1,
		Date:         day(1),
		Slot:         slot(t, "10:00"),
	}
}

func TestBookAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)

	ap, err := uc.Execute(context.Background(), validInput(t))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.NotEmpty(t, ap.Reference)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.True(t, ap.AppointmentDate.Equal(day(1)))
	require.Len(t, repo.appointments, 1)

	// The booking user got a lazily created customer profile.
	customer, err := repo.GetCustomerByUserID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, ap.CustomerID)
}

func TestBookAppointment_ValidationRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*testing.T, *BookAppointmentInput)
		wantCode string
	}{
		{
			name:     "past date",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.Date = day(-1) },
			wantCode: "past_date",
		},
		{
			name:     "thirty one days ahead",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.Date = day(31) },
			wantCode: "too_far_in_advance",
		},
		{
			name:     "barber from another shop",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.BarberID = 3 },
			wantCode: "barber_unavailable",
		},
		{
			name:     "barber flagged unavailable",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.BarberID = 2 },
			wantCode: "barber_unavailable",
		},
		{
			name:     "unknown barber",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.BarberID = 99 },
			wantCode: "barber_unavailable",
		},
		{
			name:     "service from another shop",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.ServiceID = 2 },
			wantCode: "service_mismatch",
		},
		{
			name:     "unknown service",
			mutate:   func(t *testing.T, in *BookAppointmentInput) { in.ServiceID = 99 },
			wantCode: "service_mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := newBookUC(repo)

			in := validInput(t)
			tt.mutate(t, &in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsValidation(err, tt.wantCode), "got %v", err)
			assert.Empty(t, repo.appointments, "failed booking must not persist")
		})
	}
}

func TestBookAppointment_FirstFailingRuleWins(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)

	// Past date and unavailable barber at once: the date rule runs first.
	in := validInput(t)
	in.Date = day(-1)
	in.BarberID = 2

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsValidation(err, "past_date"))
}

func TestBookAppointment_DateBoundaries(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)

	// Today and today+30 are both inside the window.
	in := validInput(t)
	in.Date = day(0)
	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)

	in = validInput(t)
	in.Date = day(domain.MaxAdvanceDays)
	in.Slot = slot(t, "11:00")
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestBookAppointment_SlotTaken(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)

	_, err := uc.Execute(context.Background(), validInput(t))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput(t))
	assert.True(t, httperr.IsConflict(err), "second booking of the same slot must conflict")
	assert.Len(t, repo.appointments, 1, "never silently overwrites")
}

func TestBookAppointment_RaceLostAtInsert(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)

	// Pre-check sees the slot free, the insert still loses: the store
	// constraint is the authority.
	repo.loseRace = true

	_, err := uc.Execute(context.Background(), validInput(t))
	assert.True(t, httperr.IsConflict(err))
	assert.Empty(t, repo.appointments)
}

func TestBookAppointment_SlotFreeAgainAfterCancel(t *testing.T) {
	repo := newFakeRepo()
	uc := newBookUC(repo)
	cancelUC := NewCancelAppointment(repo, nil, cache.NewAvailability(nil)).WithNow(fixedNow)

	ap, err := uc.Execute(context.Background(), validInput(t))
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), 42, ap.Reference)
	require.NoError(t, err)

	// Cancelled rows do not block the slot.
	rebooked, err := uc.Execute(context.Background(), validInput(t))
	require.NoError(t, err)
	assert.NotEqual(t, ap.ID, rebooked.ID)
}
