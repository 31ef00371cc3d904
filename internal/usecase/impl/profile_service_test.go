package impl

import (
	"context"
	"testing"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	mockRepo "kindred/internal/mocks/repository"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()
	want := &entity.Profile{ID: userID, Username: "donor"}

	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(want, nil)

	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	got, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrProfileNotFound)

	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	got, err := svc.GetProfile(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, got)
}

func TestProfileService_UpsertProfile_CreatesOnFirstWrite(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()

	profileRepo.EXPECT().
		Update(mock.Anything, mock.Anything).
		Return(repository.ErrProfileNotFound)
	profileRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, userID, profile.ID)
			assert.Equal(t, "donor", profile.Username)
		}).
		Return(nil)

	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	got, err := svc.UpsertProfile(context.Background(), userID, &usecase.UpsertProfileInput{
		Username:  "donor",
		Interests: []string{"environment"},
	})
	require.NoError(t, err)
	assert.Equal(t, userID, got.ID)
	assert.Equal(t, []string{"environment"}, got.Interests)
}

func TestProfileService_UpsertProfile_UpdatesExisting(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()
	stored := &entity.Profile{ID: userID, Username: "donor", ImpactScore: 30}

	profileRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(stored, nil)

	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	got, err := svc.UpsertProfile(context.Background(), userID, &usecase.UpsertProfileInput{
		Username: "donor",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, got.ImpactScore)
}

func TestProfileService_UpsertProfile_MissingUsername(t *testing.T) {
	svc := NewProfileService(ProfileServiceParams{ProfileRepo: mockRepo.NewMockProfileRepository(t)})

	got, err := svc.UpsertProfile(context.Background(), uuid.New(), &usecase.UpsertProfileInput{})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestProfileService_UpdateInterests(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()
	stored := &entity.Profile{ID: userID, Username: "donor", Interests: []string{"chess"}}

	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(stored, nil)
	profileRepo.EXPECT().
		Update(mock.Anything, mock.Anything).
		Run(func(_ context.Context, profile *entity.Profile) {
			assert.Equal(t, []string{"environment", "education"}, profile.Interests)
		}).
		Return(nil)

	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	got, err := svc.UpdateInterests(context.Background(), userID, []string{"environment", "education"})
	require.NoError(t, err)
	assert.Equal(t, []string{"environment", "education"}, got.Interests)
}

func TestProfileService_UpdateInterests_ProfileMissing(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	userID := uuid.New()

	profileRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrProfileNotFound)

	svc := NewProfileService(ProfileServiceParams{ProfileRepo: profileRepo})

	got, err := svc.UpdateInterests(context.Background(), userID, []string{"environment"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.Nil(t, got)
}
