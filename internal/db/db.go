package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fadebook/barber-booking/internal/config"
	"github.com/fadebook/barber-booking/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Barber{},
		&models.Service{},
		&models.Customer{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Close the double-booking race at the store: only pending and
	// confirmed rows hold a slot, so the unique index is partial.
	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_active_barber_slot
        ON appointments (barber_id, appointment_date, appointment_time)
        WHERE status IN ('pending', 'confirmed')
    `).Error; err != nil {
		log.Fatal("failed to create slot uniqueness index", zap.Error(err))
	}

	return db
}
