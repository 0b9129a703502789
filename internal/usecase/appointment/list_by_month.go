package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type ListByMonth struct {
	repo domain.Repository
}

func NewListByMonth(repo domain.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	shopID uint,
	year int,
	month int,
) ([]models.Appointment, error) {

	from := fmt.Sprintf("%04d-%02d-01", year, month)

	next := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	to := next.Format("2006-01-02")

	return uc.repo.ListAppointmentsForPeriod(ctx, shopID, from, to)
}
