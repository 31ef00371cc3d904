package impl

import (
	"context"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	profileRepo repository.ProfileRepository
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
	}
}

// GetProfile retrieves a profile by its identifier.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpsertProfile creates the profile on first write and updates it afterwards.
// The profile ID is always the authenticated token's subject, so an insert
// racing an update can only happen for the same owner.
func (s *profileService) UpsertProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertProfileInput) (*entity.Profile, error) {
	if input.Username == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username is required")
	}

	profile := &entity.Profile{
		ID:        userID,
		Username:  input.Username,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
		Bio:       input.Bio,
		Interests: input.Interests,
	}

	err := s.profileRepo.Update(ctx, profile)
	if err == nil {
		return s.GetProfile(ctx, userID)
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	// First write for this subject: create the row.
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfile) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// UpdateInterests replaces the profile's interest tags.
func (s *profileService) UpdateInterests(ctx context.Context, userID uuid.UUID, interests []string) (*entity.Profile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Interests = interests
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update interests")
	}

	return profile, nil
}
