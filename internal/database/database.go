package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"casahub/internal/domain/auth"
	"casahub/internal/domain/campaign"
	"casahub/internal/domain/lead"
	"casahub/internal/domain/linkedin"
	"casahub/internal/domain/notification"
	"casahub/internal/domain/property"
	"casahub/internal/domain/todo"
)

// Connect opens PostgreSQL for postgres:// DSNs and falls back to the pure
// Go SQLite driver for local development.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&property.Property{},
		&property.Image{},
		&campaign.Campaign{},
		&campaign.KPI{},
		&lead.Lead{},
		&lead.PropertyInterest{},
		&linkedin.Post{},
		&linkedin.Media{},
		&linkedin.Analytics{},
		&todo.Todo{},
		&todo.Comment{},
		&notification.Notification{},
	)
}
