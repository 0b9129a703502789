package appointment

import (
	"context"

	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

type Repository interface {
	// -------- Shop --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetShopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Shop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		shopID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	GetOrCreateCustomerForUser(
		ctx context.Context,
		shopID uint,
		userID uint,
	) (*models.Customer, error)

	// -------- Availability --------
	ListWorkingRanges(
		ctx context.Context,
		shopID uint,
		weekday int,
	) ([]string, error)

	ListBookedTimes(
		ctx context.Context,
		shopID uint,
		date string,
	) ([]string, error)

	// -------- Appointment (create / conflict) --------
	SlotTaken(
		ctx context.Context,
		shopID uint,
		date string,
		startTime string,
	) (bool, error)

	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForShop(
		ctx context.Context,
		appointmentID uint,
		shopID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForDate(
		ctx context.Context,
		shopID uint,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		shopID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)
}
