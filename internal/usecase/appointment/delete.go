package appointment

import (
	"context"

	"github.com/sharpcut-app/sharpcut-api/internal/audit"
	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
)

// Hard delete. Soft-cancel is the normal path; this exists for
// cleaning up mistakes and subscribers treat it as a cancellation.
type Delete struct {
	repo  domain.Repository
	feed  realtime.Publisher
	audit audit.Sink
}

func NewDelete(
	repo domain.Repository,
	feed realtime.Publisher,
	audit audit.Sink,
) *Delete {
	return &Delete{
		repo:  repo,
		feed:  feed,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	shopID uint,
	barberID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentForShop(ctx, appointmentID, shopID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.feed.Publish(ctx, shopID, realtime.Event{
		Type: realtime.EventDelete,
		Old:  ap,
	})

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &barberID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
