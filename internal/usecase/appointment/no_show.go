package appointment

import (
	"context"

	"github.com/sharpcut-app/sharpcut-api/internal/audit"
	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
)

type MarkNoShow struct {
	repo  domain.Repository
	feed  realtime.Publisher
	audit audit.Sink
}

func NewMarkNoShow(
	repo domain.Repository,
	feed realtime.Publisher,
	audit audit.Sink,
) *MarkNoShow {
	return &MarkNoShow{
		repo:  repo,
		feed:  feed,
		audit: audit,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	shopID uint,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForShop(ctx, appointmentID, shopID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	old := *ap

	if err := domain.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.feed.Publish(ctx, shopID, realtime.Event{
		Type: realtime.EventUpdate,
		New:  ap,
		Old:  &old,
	})

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &barberID,
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
