package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sharpcut-app/sharpcut-api/internal/config"
	"github.com/sharpcut-app/sharpcut-api/internal/models"
	"github.com/sharpcut-app/sharpcut-api/internal/timezone"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Shop{},
		&models.User{},
		&models.Service{},
		&models.Customer{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.AccessRequest{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// One live booking per slot. The write path still pre-checks, this
	// index closes the race between two concurrent submissions.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
        ON appointments (shop_id, date, start_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	db.Exec(`
        UPDATE shops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, timezone.DefaultTimezone)

	return db
}
