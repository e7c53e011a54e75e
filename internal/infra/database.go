package infra

import (
	"fmt"

	"github.com/logisticalym2023-spec/cuadre-planilla/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the full schema.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates all tables. Shared with integration setups.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.PersonalAutorizado{},
		&model.CuadrePlanilla{},
		&model.CuadreDenominacion{},
		&model.PlanillaOficial{},
	)
}
