package slots

import "context"

// BookingRepository answers which grid times are already taken.
type BookingRepository interface {
	BookedTimes(
		ctx context.Context,
		barberID string,
		date string,
	) ([]string, error)
}

type AvailabilityInput struct {
	BarberID string
	Date     string
}

// Available returns the grid entries not present in booked, in grid order.
func Available(grid []string, booked []string) []Slot {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	out := make([]Slot, 0, len(grid))
	for _, g := range grid {
		if _, ok := taken[g]; ok {
			continue
		}
		out = append(out, Slot(g))
	}
	return out
}
