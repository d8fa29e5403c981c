package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domain "github.com/BruksfildServices01/barber-slot-loader/internal/domain/slots"
)

type bookingKey struct {
	barberID string
	date     string
}

// BookingMemoryRepository keeps booked times in memory for the dev server.
type BookingMemoryRepository struct {
	mu     sync.RWMutex
	booked map[bookingKey][]string
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{booked: map[bookingKey][]string{}}
}

// ParseBooked reads entries of the form "barber@date@time", comma separated.
func ParseBooked(raw string) (*BookingMemoryRepository, error) {
	r := NewBookingMemoryRepository()
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "@")
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid booked entry %q, want barber@date@time", entry)
		}
		r.Book(parts[0], parts[1], parts[2])
	}
	return r, nil
}

func (r *BookingMemoryRepository) Book(barberID, date, hm string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := bookingKey{barberID: barberID, date: date}
	r.booked[k] = append(r.booked[k], hm)
}

func (r *BookingMemoryRepository) BookedTimes(
	ctx context.Context,
	barberID string,
	date string,
) ([]string, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.booked[bookingKey{barberID: barberID, date: date}]...), nil
}

// Compile-time check
var _ domain.BookingRepository = (*BookingMemoryRepository)(nil)
