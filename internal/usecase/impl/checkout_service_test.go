package impl

import (
	"context"
	"testing"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/service"
	mockRepo "comfortstay/internal/mocks/repository"
	mockSvc "comfortstay/internal/mocks/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	service      usecase.CheckoutUsecase
	residentRepo *mockRepo.MockResidentRepository
	roomRepo     *mockRepo.MockRoomRepository
	archiveRepo  *mockRepo.MockArchiveRepository
	publisher    *mockSvc.MockEventPublisher
	roomCache    *mockSvc.MockRoomCache
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	f := &checkoutFixture{
		residentRepo: mockRepo.NewMockResidentRepository(t),
		roomRepo:     mockRepo.NewMockRoomRepository(t),
		archiveRepo:  mockRepo.NewMockArchiveRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		roomCache:    mockSvc.NewMockRoomCache(t),
	}

	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{
			RoomRepo:     f.roomRepo,
			ResidentRepo: f.residentRepo,
			ArchiveRepo:  f.archiveRepo,
		},
	}

	f.service = NewCheckoutService(CheckoutServiceParams{
		TxManager:   txManager,
		ArchiveRepo: f.archiveRepo,
		Publisher:   f.publisher,
		RoomCache:   f.roomCache,
		Logger:      newDiscardLogger(),
	})

	return f
}

func activeResident(roomID uuid.UUID, bed int) *entity.Resident {
	moveIn := time.Now().AddDate(0, -3, 0)

	return &entity.Resident{
		ID:                 uuid.New(),
		Name:               "Rahul Sharma",
		Email:              "rahul.sharma@example.com",
		PGID:               "PG-RS1234",
		Role:               entity.RoleResident,
		RegistrationStatus: entity.RegistrationApproved,
		RoomID:             &roomID,
		BedNumber:          &bed,
		MoveInDate:         &moveIn,
		IsActive:           true,
		DepositFees:        5000,
	}
}

func TestCheckoutService_Checkout_FreesBedAndArchives(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	resident := activeResident(roomID, 2)
	room := &entity.Room{
		ID:               roomID,
		Capacity:         3,
		CurrentOccupancy: 2,
		Status:           entity.RoomStatusOccupied,
		IsActive:         true,
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)

	var archived *entity.ResidentArchive
	f.archiveRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ResidentArchive")).
		Run(func(args mock.Arguments) {
			archived = args.Get(1).(*entity.ResidentArchive)
		}).
		Return(nil)

	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)
	f.roomRepo.EXPECT().Update(ctx, room).Return(nil)
	f.residentRepo.EXPECT().Update(ctx, resident).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)

	var published *service.HostelEvent
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.HostelEvent)
		}).
		Return(nil)

	archive, err := f.service.Checkout(ctx, resident.ID, &usecase.CheckoutInput{
		ExitSurvey: &usecase.ExitSurveyInput{
			Rating:         4,
			Comments:       "good stay",
			WouldRecommend: true,
		},
		RefundAmount: 4500,
		RefundMethod: "UPI",
	})
	require.NoError(t, err)

	require.NotNil(t, archived)
	assert.Equal(t, archive, archived)
	assert.Equal(t, resident.ID, archived.ResidentID)
	assert.Equal(t, entity.ArchiveReasonCompletedStay, archived.ArchiveReason)
	assert.Equal(t, roomID, *archived.RoomID)
	assert.Equal(t, 2, *archived.BedNumber)
	assert.True(t, archived.ExitSurveyCompleted)
	assert.Equal(t, 4, archived.ExitFeedback.Rating)
	assert.Equal(t, float64(4500), archived.RefundAmount)

	// Bed 2 is free again and the occupancy dropped by exactly one.
	assert.Equal(t, 1, room.CurrentOccupancy)
	assert.False(t, resident.IsActive)
	assert.Nil(t, resident.RoomID)
	assert.Nil(t, resident.BedNumber)
	require.NotNil(t, resident.MoveOutDate)

	require.NotNil(t, published)
	assert.Equal(t, service.EventResidentCheckedOut, published.Type)
	assert.Equal(t, "PG-RS1234", published.PGID)
}

func TestCheckoutService_Checkout_LastResidentMakesRoomAvailable(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	resident := activeResident(roomID, 1)
	room := &entity.Room{
		ID:               roomID,
		Capacity:         2,
		CurrentOccupancy: 1,
		Status:           entity.RoomStatusOccupied,
		IsActive:         true,
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)
	f.archiveRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ResidentArchive")).
		Return(nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)
	f.roomRepo.EXPECT().Update(ctx, room).Return(nil)
	f.residentRepo.EXPECT().Update(ctx, resident).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(nil)

	_, err := f.service.Checkout(ctx, resident.ID, &usecase.CheckoutInput{SkipSurvey: true})
	require.NoError(t, err)
	assert.Equal(t, 0, room.CurrentOccupancy)
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)
}

func TestCheckoutService_Checkout_AlreadyCheckedOut(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	moveOut := time.Now().AddDate(0, -1, 0)
	resident := &entity.Resident{
		ID:          uuid.New(),
		IsActive:    false,
		MoveOutDate: &moveOut,
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)

	archive, err := f.service.Checkout(ctx, resident.ID, &usecase.CheckoutInput{})
	assert.Nil(t, archive)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyCheckedOut)
}

func TestCheckoutService_Checkout_UnknownReason(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	archive, err := f.service.Checkout(ctx, uuid.New(), &usecase.CheckoutInput{
		ArchiveReason: "Eloped",
	})
	assert.Nil(t, archive)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCheckoutService_Deactivate_ConvergesOnExistingArchive(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	// Already checked out: inactive, no room, departure date on record.
	moveOut := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	resident := &entity.Resident{
		ID:          uuid.New(),
		Name:        "Rahul Sharma",
		PGID:        "PG-RS1234",
		IsActive:    false,
		MoveOutDate: &moveOut,
	}

	f.residentRepo.EXPECT().FindByID(ctx, resident.ID).Return(resident, nil)

	var archived *entity.ResidentArchive
	f.archiveRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ResidentArchive")).
		Run(func(args mock.Arguments) {
			archived = args.Get(1).(*entity.ResidentArchive)
		}).
		Return(nil)

	f.residentRepo.EXPECT().Update(ctx, resident).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(nil)

	keyReturned := false
	err := f.service.Deactivate(ctx, resident.ID, &usecase.DeactivateInput{
		KeyIssued: &keyReturned,
		DepositReturn: &entity.DepositReturn{
			Amount: 5000,
			Date:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	// The original departure date is preserved, not overwritten with "now".
	require.NotNil(t, archived)
	assert.Equal(t, moveOut, archived.MoveOutDate)
	assert.Equal(t, entity.ArchiveReasonOther, archived.ArchiveReason)
	assert.Equal(t, float64(5000), archived.DepositReturn.Amount)
}

func TestCheckoutService_UpdateExitSurvey_KeepsStayDuration(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	residentID := uuid.New()
	archive := &entity.ResidentArchive{
		ID:           uuid.New(),
		ResidentID:   residentID,
		StayDuration: 30,
	}

	f.archiveRepo.EXPECT().FindByResidentID(ctx, residentID).Return(archive, nil)
	f.archiveRepo.EXPECT().Update(ctx, archive).Return(nil)

	updated, err := f.service.UpdateExitSurvey(ctx, residentID, &usecase.ExitSurveyInput{
		Rating:           5,
		Comments:         "late survey",
		ReasonForLeaving: "job change",
	})
	require.NoError(t, err)
	assert.True(t, updated.ExitSurveyCompleted)
	assert.Equal(t, 5, updated.ExitFeedback.Rating)
	assert.Equal(t, 30, updated.StayDuration)
}
