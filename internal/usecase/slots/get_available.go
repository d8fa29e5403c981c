package slots

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-slot-loader/internal/domain/slots"
	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
	"github.com/BruksfildServices01/barber-slot-loader/internal/timezone"
)

const (
	CodeInvalidDate = "invalid_date"
	CodeInvalidTime = "invalid_time"
)

type GetAvailable struct {
	repo     domain.BookingRepository
	grid     []string
	timezone string
	now      func() time.Time
}

func NewGetAvailable(
	repo domain.BookingRepository,
	grid []string,
	tz string,
) *GetAvailable {
	return &GetAvailable{
		repo:     repo,
		grid:     grid,
		timezone: tz,
		now:      func() time.Time { return timezone.NowIn(tz) },
	}
}

// Execute returns the day grid minus booked times. Past dates have no
// slots, so a booking form never offers a time that cannot be booked.
func (uc *GetAvailable) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Slot, error) {

	loc := timezone.Location(uc.timezone)

	date, err := timezone.ParseDate(in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(CodeInvalidDate)
	}

	if date.Before(timezone.StartOfDay(uc.now(), loc)) {
		return []domain.Slot{}, nil
	}

	for _, hm := range uc.grid {
		if _, err := time.Parse("15:04", hm); err != nil {
			return nil, httperr.ErrBusiness(CodeInvalidTime)
		}
	}

	booked, err := uc.repo.BookedTimes(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}

	return domain.Available(uc.grid, booked), nil
}
