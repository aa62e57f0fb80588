package impl

import (
	"context"
	"testing"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	mockRepo "comfortstay/internal/mocks/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResidentService(t *testing.T) (usecase.ResidentUsecase, *mockRepo.MockResidentRepository) {
	residentRepo := mockRepo.NewMockResidentRepository(t)
	svc := NewResidentService(ResidentServiceParams{ResidentRepo: residentRepo})

	return svc, residentRepo
}

func TestResidentService_UpdateResident_PartialEdit(t *testing.T) {
	svc, residentRepo := newResidentService(t)
	ctx := context.Background()

	resident := &entity.Resident{
		ID:    uuid.New(),
		Name:  "Jane Doe",
		Phone: "9876543210",
	}

	residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	residentRepo.EXPECT().Update(ctx, resident).Return(nil)

	newPhone := "9123456789"
	updated, err := svc.UpdateResident(ctx, resident.ID, &usecase.ResidentUpdateInput{
		Phone: &newPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "9123456789", updated.Phone)
}

func TestResidentService_StartNoticePeriod(t *testing.T) {
	svc, residentRepo := newResidentService(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New(), IsActive: true}
	lastDay := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	residentRepo.EXPECT().Update(ctx, resident).Return(nil)

	updated, err := svc.StartNoticePeriod(ctx, resident.ID, &usecase.NoticeInput{
		LastStayingDate: lastDay,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsOnNoticePeriod)
	assert.Equal(t, lastDay, *updated.LastStayingDate)
}

func TestResidentService_StartNoticePeriod_InactiveResident(t *testing.T) {
	svc, residentRepo := newResidentService(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New(), IsActive: false}
	residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)

	updated, err := svc.StartNoticePeriod(ctx, resident.ID, &usecase.NoticeInput{
		LastStayingDate: time.Now().AddDate(0, 1, 0),
	})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestResidentService_CancelNoticePeriod(t *testing.T) {
	svc, residentRepo := newResidentService(t)
	ctx := context.Background()

	lastDay := time.Now().AddDate(0, 1, 0)
	resident := &entity.Resident{
		ID:               uuid.New(),
		IsActive:         true,
		IsOnNoticePeriod: true,
		LastStayingDate:  &lastDay,
	}

	residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	residentRepo.EXPECT().Update(ctx, resident).Return(nil)

	updated, err := svc.CancelNoticePeriod(ctx, resident.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsOnNoticePeriod)
	assert.Nil(t, updated.LastStayingDate)
}

func TestResidentService_CancelNoticePeriod_NotOnNotice(t *testing.T) {
	svc, residentRepo := newResidentService(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New(), IsActive: true}
	residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)

	updated, err := svc.CancelNoticePeriod(ctx, resident.ID)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}
