package appointment

import (
	"context"

	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type GetForShop struct {
	repo domain.Repository
}

func NewGetForShop(repo domain.Repository) *GetForShop {
	return &GetForShop{repo: repo}
}

func (uc *GetForShop) Execute(
	ctx context.Context,
	shopID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.repo.GetAppointmentForShop(ctx, appointmentID, shopID)
}
