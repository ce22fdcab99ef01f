package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability caches available-times responses for a short window.
// The booking insert stays the authoritative guard, so a stale read is
// harmless; bookings and cancellations invalidate eagerly anyway.
type Availability struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailability(client *redis.Client) *Availability {
	return &Availability{
		client: client,
		ttl:    30 * time.Second,
	}
}

func (a *Availability) key(barberID uint, date time.Time) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date.Format("2006-01-02"))
}

func (a *Availability) Get(ctx context.Context, barberID uint, date time.Time) ([]string, bool) {
	if a == nil || a.client == nil {
		return nil, false
	}

	raw, err := a.client.Get(ctx, a.key(barberID, date)).Result()
	if err != nil {
		return nil, false
	}

	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil, false
	}

	return times, true
}

func (a *Availability) Set(ctx context.Context, barberID uint, date time.Time, times []string) {
	if a == nil || a.client == nil {
		return
	}

	raw, err := json.Marshal(times)
	if err != nil {
		return
	}

	a.client.Set(ctx, a.key(barberID, date), raw, a.ttl)
}

func (a *Availability) Invalidate(ctx context.Context, barberID uint, date time.Time) {
	if a == nil || a.client == nil {
		return
	}

	a.client.Del(ctx, a.key(barberID, date))
}
