package impl

import (
	"context"
	"testing"

	"kindred/internal/domain/entity"
	domainerrors "kindred/internal/domain/errors"
	"kindred/internal/domain/repository"
	mockRepo "kindred/internal/mocks/repository"
	mockSvc "kindred/internal/mocks/service"
	"kindred/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNGOService_GetNGO_NotFound(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	id := uuid.New()

	ngoRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNGONotFound)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.GetNGO(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNGONotFound)
	assert.Nil(t, got)
}

func TestNGOService_ListNGOs(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	catalog := []*entity.NGO{{ID: uuid.New(), Name: "Green Horizon"}}

	ngoRepo.EXPECT().List(mock.Anything).Return(catalog, nil)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.ListNGOs(context.Background(), entity.CategoryUnset)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestNGOService_ListNGOs_ByCategory(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	catalog := []*entity.NGO{{ID: uuid.New(), Name: "Green Horizon", Category: entity.CategoryEnvironment}}

	ngoRepo.EXPECT().ListByCategory(mock.Anything, entity.CategoryEnvironment).Return(catalog, nil)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.ListNGOs(context.Background(), entity.CategoryEnvironment)
	require.NoError(t, err)
	assert.Equal(t, catalog, got)
}

func TestNGOService_ListNGOs_UnknownCategory(t *testing.T) {
	svc := NewNGOService(NGOServiceParams{
		NGORepo:       mockRepo.NewMockNGORepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.ListNGOs(context.Background(), entity.NGOCategory("space-travel"))
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestNGOService_CreateNGO(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)

	ngoRepo.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, ngo *entity.NGO) {
			assert.Equal(t, "Green Horizon", ngo.Name)
			assert.Equal(t, entity.CategoryEnvironment, ngo.Category)
		}).
		Return(nil)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.CreateNGO(context.Background(), &usecase.NGOInput{
		Name:     "Green Horizon",
		Category: "environment",
	})
	require.NoError(t, err)
	assert.Equal(t, "Green Horizon", got.Name)
}

func TestNGOService_CreateNGO_Invalid(t *testing.T) {
	svc := NewNGOService(NGOServiceParams{
		NGORepo:       mockRepo.NewMockNGORepository(t),
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	tests := []struct {
		name  string
		input *usecase.NGOInput
	}{
		{"missing name", &usecase.NGOInput{Category: "environment"}},
		{"unknown category", &usecase.NGOInput{Name: "X", Category: "space-travel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CreateNGO(context.Background(), tt.input)
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestNGOService_UpdateNGO_NotFound(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	id := uuid.New()

	ngoRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(repository.ErrNGONotFound)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.UpdateNGO(context.Background(), id, &usecase.NGOInput{Name: "Green Horizon"})
	assert.ErrorIs(t, err, domainerrors.ErrNGONotFound)
	assert.Nil(t, got)
}

func TestNGOService_GenerateDonationQR(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	id := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	ngoRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.NGO{ID: id, Name: "Green Horizon"}, nil)
	qrService.EXPECT().GenerateDonationQR(id).Return(png, nil)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: qrService,
	})

	got, err := svc.GenerateDonationQR(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestNGOService_GenerateDonationQR_UnknownNGO(t *testing.T) {
	ngoRepo := mockRepo.NewMockNGORepository(t)
	id := uuid.New()

	ngoRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNGONotFound)

	svc := NewNGOService(NGOServiceParams{
		NGORepo:       ngoRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
	})

	got, err := svc.GenerateDonationQR(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNGONotFound)
	assert.Nil(t, got)
}
