package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/sharpcut-app/sharpcut-api/internal/domain/appointment"
	"github.com/sharpcut-app/sharpcut-api/internal/httperr"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *AppointmentGormRepository) GetShopBySlug(
	ctx context.Context,
	slug string,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ? AND active = true", serviceID, shopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	shopID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND phone = ?", shopID, phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		ShopID: shopID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

func (r *AppointmentGormRepository) GetOrCreateCustomerForUser(
	ctx context.Context,
	shopID uint,
	userID uint,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND user_id = ?", shopID, userID).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}

	customer = models.Customer{
		ShopID: shopID,
		UserID: &user.ID,
		Name:   user.Name,
		Phone:  user.Phone,
		Email:  user.Email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListWorkingRanges(
	ctx context.Context,
	shopID uint,
	weekday int,
) ([]string, error) {

	var rows []models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND weekday = ?", shopID, weekday).
		Order("position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	ranges := make([]string, 0, len(rows))
	for _, row := range rows {
		ranges = append(ranges, row.TimeRange)
	}
	return ranges, nil
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	shopID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"shop_id = ? AND date = ? AND status NOT IN ('cancelled', 'completed')",
			shopID, date,
		).
		Order("start_time ASC").
		Pluck("start_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) SlotTaken(
	ctx context.Context,
	shopID uint,
	date string,
	startTime string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"shop_id = ? AND date = ? AND start_time = ? AND status NOT IN ('cancelled', 'completed')",
			shopID, date, startTime,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateAppointmentIfFree re-checks the slot under a row lock and
// inserts in the same transaction. A concurrent winner surfaces either
// through the locked re-check or as a unique violation on the partial
// index; both map to slot_taken.
func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"shop_id = ? AND date = ? AND start_time = ? AND status NOT IN ('cancelled', 'completed')",
				ap.ShopID, ap.Date, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForShop(
	ctx context.Context,
	appointmentID uint,
	shopID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("id = ? AND shop_id = ?", appointmentID, shopID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	shopID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("shop_id = ? AND date = ?", shopID, date).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	shopID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"shop_id = ? AND date >= ? AND date < ?",
			shopID, fromDate, toDate,
		).
		Order("date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
