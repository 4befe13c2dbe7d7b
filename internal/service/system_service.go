package service

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	"fintrack/internal/database"
	"fintrack/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// VersionInfo reports the application version and the applied database
// schema version.
func (s *SystemService) VersionInfo() (appVersion string, schemaVersion int64) {
	appVersion = version.Version
	schemaVersion, err := goose.GetDBVersion(s.db)
	if err != nil {
		schemaVersion = -1
	}
	return appVersion, schemaVersion
}
