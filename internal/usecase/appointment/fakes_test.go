package appointment

import (
	"context"

	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/audit"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
)

// fakeRepo is a hand-rolled in-memory Repository for the use-case
// tests. Fields are preloaded per test; writes are recorded.
type fakeRepo struct {
	shop     *models.Shop
	service  *models.Service
	customer *models.Customer

	ranges []string
	booked []string
	taken  bool

	appointments map[uint]*models.Appointment

	createErr error
	created   *models.Appointment
	updated   *models.Appointment
	deleted   *models.Appointment

	listDate   []models.Appointment
	listPeriod []models.Appointment
	periodFrom string
	periodTo   string
}

func (r *fakeRepo) GetShopByID(ctx context.Context, id uint) (*models.Shop, error) {
	if r.shop == nil || r.shop.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.shop, nil
}

func (r *fakeRepo) GetShopBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	if r.shop == nil || r.shop.Slug != slug {
		return nil, gorm.ErrRecordNotFound
	}
	return r.shop, nil
}

func (r *fakeRepo) GetService(ctx context.Context, shopID uint, serviceID uint) (*models.Service, error) {
	if r.service == nil || r.service.ID != serviceID {
		return nil, gorm.ErrRecordNotFound
	}
	return r.service, nil
}

func (r *fakeRepo) GetOrCreateCustomer(ctx context.Context, shopID uint, name, phone, email string) (*models.Customer, error) {
	if r.customer == nil {
		r.customer = &models.Customer{ID: 1, ShopID: shopID, Name: name, Phone: phone, Email: email}
	}
	return r.customer, nil
}

func (r *fakeRepo) GetOrCreateCustomerForUser(ctx context.Context, shopID uint, userID uint) (*models.Customer, error) {
	if r.customer == nil {
		r.customer = &models.Customer{ID: 1, ShopID: shopID, UserID: &userID}
	}
	return r.customer, nil
}

func (r *fakeRepo) ListWorkingRanges(ctx context.Context, shopID uint, weekday int) ([]string, error) {
	return r.ranges, nil
}

func (r *fakeRepo) ListBookedTimes(ctx context.Context, shopID uint, date string) ([]string, error) {
	return r.booked, nil
}

func (r *fakeRepo) SlotTaken(ctx context.Context, shopID uint, date, startTime string) (bool, error) {
	return r.taken, nil
}

func (r *fakeRepo) CreateAppointmentIfFree(ctx context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = 101
	r.created = ap
	return nil
}

func (r *fakeRepo) GetAppointmentForShop(ctx context.Context, appointmentID, shopID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.ShopID != shopID {
		return nil, gorm.ErrRecordNotFound
	}
	return ap, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.updated = ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	r.deleted = ap
	delete(r.appointments, ap.ID)
	return nil
}

func (r *fakeRepo) ListAppointmentsForDate(ctx context.Context, shopID uint, date string) ([]models.Appointment, error) {
	return r.listDate, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, shopID uint, fromDate, toDate string) ([]models.Appointment, error) {
	r.periodFrom = fromDate
	r.periodTo = toDate
	return r.listPeriod, nil
}

// capturePublisher records feed events instead of hitting Redis.
type capturePublisher struct {
	events []realtime.Event
}

func (p *capturePublisher) Publish(ctx context.Context, shopID uint, ev realtime.Event) {
	p.events = append(p.events, ev)
}

type nopSink struct{}

func (nopSink) Dispatch(ev audit.Event) {}
