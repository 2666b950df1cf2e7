package database

import (
	"backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes the process-wide connection pool using GORM and
// creates the schema.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the identity schema: entities first, then the association
// tables carrying the cascading foreign keys.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.App{},
		&model.Role{},
		&model.Permission{},
		&model.UserApp{},
		&model.UserRole{},
		&model.RolePermission{},
		&model.UserPermission{},
	)
}

// Close drains and closes the underlying pool. Called exactly once at shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
