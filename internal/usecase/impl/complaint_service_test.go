package impl

import (
	"context"
	"testing"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	mockRepo "comfortstay/internal/mocks/repository"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type complaintFixture struct {
	service       usecase.ComplaintUsecase
	complaintRepo *mockRepo.MockComplaintRepository
	residentRepo  *mockRepo.MockResidentRepository
}

func newComplaintFixture(t *testing.T) *complaintFixture {
	f := &complaintFixture{
		complaintRepo: mockRepo.NewMockComplaintRepository(t),
		residentRepo:  mockRepo.NewMockResidentRepository(t),
	}

	f.service = NewComplaintService(ComplaintServiceParams{
		ComplaintRepo: f.complaintRepo,
		ResidentRepo:  f.residentRepo,
	})

	return f
}

func TestComplaintService_CreateComplaint_StartsOpen(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	resident := &entity.Resident{ID: uuid.New()}
	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.complaintRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Complaint")).
		Return(nil)

	complaint, err := f.service.CreateComplaint(ctx, &usecase.ComplaintInput{
		ResidentID: resident.ID,
		Category:   "plumbing",
		Subject:    "leaking tap",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusOpen, complaint.Status)
	assert.Nil(t, complaint.ResolvedAt)
}

func TestComplaintService_CreateComplaint_UnknownResident(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	residentID := uuid.New()
	f.residentRepo.EXPECT().
		FindByID(ctx, residentID).
		Return(nil, repository.ErrResidentNotFound)

	complaint, err := f.service.CreateComplaint(ctx, &usecase.ComplaintInput{
		ResidentID: residentID,
		Category:   "plumbing",
		Subject:    "leaking tap",
	})
	assert.Nil(t, complaint)
	assert.ErrorIs(t, err, domainerrors.ErrResidentNotFound)
}

func TestComplaintService_UpdateComplaint_ResolvedStampsTime(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	complaint := &entity.Complaint{
		ID:     uuid.New(),
		Status: entity.ComplaintStatusInProgress,
	}

	f.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)
	f.complaintRepo.EXPECT().Update(ctx, complaint).Return(nil)

	resolved := entity.ComplaintStatusResolved
	updated, err := f.service.UpdateComplaint(ctx, complaint.ID, &usecase.ComplaintUpdateInput{
		Status: &resolved,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
}

func TestComplaintService_UpdateComplaint_ReopenClearsResolvedAt(t *testing.T) {
	f := newComplaintFixture(t)
	ctx := context.Background()

	resolvedAt := time.Now().Add(-time.Hour)
	complaint := &entity.Complaint{
		ID:         uuid.New(),
		Status:     entity.ComplaintStatusResolved,
		ResolvedAt: &resolvedAt,
	}

	f.complaintRepo.EXPECT().FindByID(ctx, complaint.ID).Return(complaint, nil)
	f.complaintRepo.EXPECT().Update(ctx, complaint).Return(nil)

	// The free enum allows Resolved -> Open directly.
	reopened := entity.ComplaintStatusOpen
	updated, err := f.service.UpdateComplaint(ctx, complaint.ID, &usecase.ComplaintUpdateInput{
		Status: &reopened,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ComplaintStatusOpen, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
}
