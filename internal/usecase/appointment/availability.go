package appointment

import (
	"context"
	"time"

	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/domain/schedule"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

type Availability struct {
	repo domain.Repository
}

func NewAvailability(repo domain.Repository) *Availability {
	return &Availability{repo: repo}
}

// Execute derives the bookable start times for one shop and date:
// the working-hours grid minus every appointment still holding its
// slot. Recomputed on demand, never stored.
func (uc *Availability) Execute(
	ctx context.Context,
	shopID uint,
	date string,
) ([]string, error) {

	shop, err := uc.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", date, timezone.Location(shop.Timezone))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	ranges, err := uc.repo.ListWorkingRanges(ctx, shopID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(ranges) == 0 {
		// closed that weekday
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, shopID, date)
	if err != nil {
		return nil, err
	}

	return schedule.Slots(ranges, booked, schedule.SlotMinutes), nil
}
