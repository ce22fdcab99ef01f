package booking

import (
	"context"
	"time"

	"github.com/fadebook/barber-booking/internal/cache"
	domain "github.com/fadebook/barber-booking/internal/domain/booking"
	"github.com/fadebook/barber-booking/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	availability *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availability,
	}
}

// Execute returns the barber's free "HH:MM" slots for the date, in
// ascending order: the shop-hours grid minus slots held by pending or
// confirmed appointments. The read is best-effort; booking's insert is
// what actually guards the slot.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]string, error) {

	if times, ok := uc.cache.Get(ctx, barberID, date); ok {
		return times, nil
	}

	barber, err := uc.repo.GetBarber(ctx, barberID)
	if err != nil {
		return nil, httperr.ErrNotFound("barber_not_found")
	}

	opening, err := domain.ParseTimeOfDay(barber.Barbershop.OpeningTime)
	if err != nil {
		return nil, err
	}
	closing, err := domain.ParseTimeOfDay(barber.Barbershop.ClosingTime)
	if err != nil {
		return nil, err
	}

	grid := domain.GenerateSlots(opening, closing, domain.SlotIntervalMinutes)

	booked, err := uc.repo.ListActiveTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	times := make([]string, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot.String()]; ok {
			continue
		}
		times = append(times, slot.String())
	}

	uc.cache.Set(ctx, barberID, date, times)

	return times, nil
}
