package database

import (
	"fmt"

	"medtrack/config"
	"medtrack/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// MigratePostgres creates or updates the tables named in cfg, including the
// unique email indexes that reject duplicate registrations.
func MigratePostgres(db *gorm.DB, cfg config.StoreConfig) error {
	tables := []struct {
		name  string
		model interface{}
	}{
		{cfg.PatientsTable, &entity.Patient{}},
		{cfg.DoctorsTable, &entity.Doctor{}},
		{cfg.AppointmentsTable, &entity.Appointment{}},
		{cfg.TransitionsTable, &entity.AppointmentTransition{}},
	}

	for _, t := range tables {
		if err := db.Table(t.name).AutoMigrate(t.model); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", t.name, err)
		}
		logrus.Infof("Migrated table %s", t.name)
	}
	return nil
}
