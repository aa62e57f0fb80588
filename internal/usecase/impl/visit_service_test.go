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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVisitService(t *testing.T) (usecase.VisitUsecase, *mockRepo.MockVisitRequestRepository) {
	visitRepo := mockRepo.NewMockVisitRequestRepository(t)
	svc := NewVisitService(VisitServiceParams{VisitRepo: visitRepo})

	return svc, visitRepo
}

func TestVisitService_RequestVisit_StartsPending(t *testing.T) {
	svc, visitRepo := newVisitService(t)
	ctx := context.Background()

	visitRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.VisitRequest")).
		Return(nil)

	request, err := svc.RequestVisit(ctx, &usecase.VisitRequestInput{
		Name:  "Walk In",
		Email: "walkin@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusPending, request.Status)
}

func TestVisitService_ScheduleVisit(t *testing.T) {
	svc, visitRepo := newVisitService(t)
	ctx := context.Background()

	request := &entity.VisitRequest{ID: uuid.New(), Status: entity.VisitStatusPending}
	slot := time.Date(2026, 9, 5, 11, 0, 0, 0, time.UTC)

	visitRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	visitRepo.EXPECT().Update(ctx, request).Return(nil)

	scheduled, err := svc.ScheduleVisit(ctx, request.ID, slot, "bring ID proof")
	require.NoError(t, err)
	assert.Equal(t, entity.VisitStatusScheduled, scheduled.Status)
	assert.Equal(t, slot, *scheduled.ScheduledAt)
	assert.Equal(t, "bring ID proof", scheduled.Notes)
}

func TestVisitService_CompletePendingVisitRejected(t *testing.T) {
	svc, visitRepo := newVisitService(t)
	ctx := context.Background()

	request := &entity.VisitRequest{ID: uuid.New(), Status: entity.VisitStatusPending}
	visitRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	completed, err := svc.CompleteVisit(ctx, request.ID)
	assert.Nil(t, completed)
	require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Pending -> Completed", appErr.Details())
}

func TestVisitService_CancelCompletedVisitRejected(t *testing.T) {
	svc, visitRepo := newVisitService(t)
	ctx := context.Background()

	request := &entity.VisitRequest{ID: uuid.New(), Status: entity.VisitStatusCompleted}
	visitRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	cancelled, err := svc.CancelVisit(ctx, request.ID)
	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestVisitService_ListVisits_UnknownStatus(t *testing.T) {
	svc, _ := newVisitService(t)
	ctx := context.Background()

	requests, err := svc.ListVisits(ctx, "Ghosted")
	assert.Nil(t, requests)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
