package store

import "github.com/MKhiriev/go-user-portal/internal/logger"

// Repositories aggregates all data-access implementations so that the
// service layer receives one handle instead of individual repositories.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories constructs every repository over the shared DB handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
