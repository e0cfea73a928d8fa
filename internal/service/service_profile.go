package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-portal/internal/logger"
	"github.com/MKhiriev/go-user-portal/internal/store"
	"github.com/MKhiriev/go-user-portal/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService over the given UserRepository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetByUsername returns the public profile of the named user.
func (p *profileService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Error().Msg("empty username provided for profile lookup")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := p.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return foundUser, nil
}

// GetByID returns the profile owned by the given internal identifier.
func (p *profileService) GetByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup by id failed")
		return models.User{}, fmt.Errorf("profile lookup by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile overwrites the three mutable fields of the session's own
// user. A zero-row update means the account vanished while the session was
// still alive and surfaces as store.ErrUserNotFound.
func (p *profileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	if err := p.userRepository.UpdateProfile(ctx, userID, update); err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}
