package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sharpcut-app/sharpcut-api/internal/audit"
	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/domain/schedule"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/metrics"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ShopID uint

	Date string // 2006-01-02
	Time string // 15:04

	ServiceID uint

	// exactly one identity: a logged-in customer or a guest
	CustomerUserID *uint
	GuestName      string
	GuestPhone     string
	GuestEmail     string

	Notes string

	// barber id when booked from the dashboard, nil for self-service
	ActorID *uint
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo  domain.Repository
	feed  realtime.Publisher
	audit audit.Sink
}

func NewBook(
	repo domain.Repository,
	feed realtime.Publisher,
	audit audit.Sink,
) *Book {
	return &Book{
		repo:  repo,
		feed:  feed,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Identity: customer XOR guest
	// --------------------------------------------------
	hasGuest := in.GuestName != "" && in.GuestPhone != ""
	if in.CustomerUserID == nil && !hasGuest {
		return nil, httperr.ErrBusiness("identity_required")
	}
	if in.CustomerUserID != nil && hasGuest {
		return nil, httperr.ErrBusiness("identity_conflict")
	}

	// --------------------------------------------------
	// 2. Shop and requested slot
	// --------------------------------------------------
	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	startMin, err := schedule.ParseClock(in.Time)
	if err != nil || startMin%schedule.SlotMinutes != 0 {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	start := schedule.FormatSlot(startMin)

	now := timezone.NowIn(shop.Timezone)
	startAt := day.Add(time.Duration(startMin) * time.Minute)
	if startAt.Before(now) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

	// --------------------------------------------------
	// 3. Service
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.ShopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 4. Working hours
	// --------------------------------------------------
	ranges, err := uc.repo.ListWorkingRanges(ctx, in.ShopID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if !schedule.Contains(ranges, start, schedule.SlotMinutes) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// 5. Availability re-check (read path)
	// --------------------------------------------------
	taken, err := uc.repo.SlotTaken(ctx, in.ShopID, in.Date, start)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.SlotConflicts.Inc()
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 6. Customer record
	// --------------------------------------------------
	var customer *models.Customer
	if in.CustomerUserID != nil {
		customer, err = uc.repo.GetOrCreateCustomerForUser(ctx, in.ShopID, *in.CustomerUserID)
	} else {
		customer, err = uc.repo.GetOrCreateCustomer(ctx, in.ShopID, in.GuestName, in.GuestPhone, in.GuestEmail)
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Conditional insert (write path)
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		ShopID:          in.ShopID,
		CustomerID:      &customer.ID,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
		ServiceDuration: service.DurationMin,
		Date:            in.Date,
		StartTime:       start,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
	}
	if in.CustomerUserID == nil {
		ap.GuestName = in.GuestName
		ap.GuestPhone = in.GuestPhone
	}

	if err := uc.repo.CreateAppointmentIfFree(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	metrics.Bookings.Inc()

	// --------------------------------------------------
	// 8. Change-feed + audit
	// --------------------------------------------------
	uc.feed.Publish(ctx, in.ShopID, realtime.Event{
		Type: realtime.EventInsert,
		New:  ap,
	})

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   in.ActorID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
