package appointment

import (
	"context"

	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	shopID uint,
	date string,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForDate(ctx, shopID, date)
}
