package service

import (
	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/store"
)

// Services aggregates all business-logic services so the handler layer
// receives a single handle.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
}

// NewServices wires every service to its repositories.
func NewServices(repositories *store.Repositories, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, logger),
		ProfileService: NewProfileService(repositories.UserRepository, logger),
	}
}
