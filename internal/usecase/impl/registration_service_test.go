package impl

import (
	"context"
	"testing"
	"time"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	"comfortstay/internal/domain/service"
	mockRepo "comfortstay/internal/mocks/repository"
	mockSvc "comfortstay/internal/mocks/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationFixture struct {
	service       usecase.RegistrationUsecase
	residentRepo  *mockRepo.MockResidentRepository
	roomRepo      *mockRepo.MockRoomRepository
	paymentRepo   *mockRepo.MockPaymentRepository
	credentialSvc *mockSvc.MockCredentialService
	hasher        *mockSvc.MockPasswordHasher
	publisher     *mockSvc.MockEventPublisher
	roomCache     *mockSvc.MockRoomCache
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	f := &registrationFixture{
		residentRepo:  mockRepo.NewMockResidentRepository(t),
		roomRepo:      mockRepo.NewMockRoomRepository(t),
		paymentRepo:   mockRepo.NewMockPaymentRepository(t),
		credentialSvc: mockSvc.NewMockCredentialService(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		publisher:     mockSvc.NewMockEventPublisher(t),
		roomCache:     mockSvc.NewMockRoomCache(t),
	}

	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{
			RoomRepo:     f.roomRepo,
			ResidentRepo: f.residentRepo,
			PaymentRepo:  f.paymentRepo,
		},
	}

	f.service = NewRegistrationService(RegistrationServiceParams{
		TxManager:     txManager,
		ResidentRepo:  f.residentRepo,
		CredentialSvc: f.credentialSvc,
		Hasher:        f.hasher,
		Publisher:     f.publisher,
		RoomCache:     f.roomCache,
		Logger:        newDiscardLogger(),
	})

	return f
}

func TestRegistrationService_Register_CreatesPendingResident(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	f.residentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Resident")).
		Return(nil)

	resident, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		Phone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationPending, resident.RegistrationStatus)
	assert.Equal(t, entity.RoleResident, resident.Role)
	assert.False(t, resident.IsActive)
	assert.Empty(t, resident.PGID)
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	f.residentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Resident")).
		Return(repository.ErrDuplicateEmail)

	resident, err := f.service.Register(ctx, &usecase.RegisterInput{
		Name:  "Jane Doe",
		Email: "jane.doe@example.com",
		Phone: "9876543210",
	})
	assert.Nil(t, resident)
	assert.ErrorIs(t, err, domainerrors.ErrResidentAlreadyExists)
}

func TestRegistrationService_Confirm_AssignsLowestFreeBed(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	pending := &entity.Resident{
		ID:                 uuid.New(),
		Name:               "Jane Doe",
		Email:              "jane.doe@example.com",
		Role:               entity.RoleResident,
		RegistrationStatus: entity.RegistrationPending,
	}
	room := &entity.Room{
		ID:               roomID,
		RoomNumber:       "101",
		Capacity:         3,
		CurrentOccupancy: 2,
		Status:           entity.RoomStatusAvailable,
		IsActive:         true,
	}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)
	f.roomRepo.EXPECT().
		OccupiedBeds(ctx, roomID).
		Return(map[int]struct{}{1: {}, 3: {}}, nil)
	f.credentialSvc.EXPECT().GenerateTempPassword().Return("temp-secret", nil)
	f.hasher.EXPECT().Hash("temp-secret").Return("hashed-secret", nil)
	f.credentialSvc.EXPECT().GeneratePGID("jane.doe@example.com").Return("PG-JD4821")
	f.residentRepo.EXPECT().Update(ctx, pending).Return(nil)
	f.roomRepo.EXPECT().Update(ctx, room).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)

	var published *service.HostelEvent
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*service.HostelEvent)
		}).
		Return(nil)

	result, err := f.service.Confirm(ctx, pending.ID, &usecase.ConfirmInput{RoomID: roomID})
	require.NoError(t, err)

	// The gap at bed 2 is filled before any higher bed.
	assert.Equal(t, 2, result.BedNumber)
	assert.Equal(t, "PG-JD4821", result.PGID)
	assert.Equal(t, entity.RegistrationApproved, pending.RegistrationStatus)
	assert.True(t, pending.IsActive)
	assert.Equal(t, "hashed-secret", pending.PasswordHash)
	assert.Equal(t, roomID, *pending.RoomID)
	assert.Equal(t, 2, *pending.BedNumber)
	assert.Equal(t, 3, room.CurrentOccupancy)
	// Room status stays admin-managed even when the room fills up.
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)

	require.NotNil(t, published)
	assert.Equal(t, service.EventResidentApproved, published.Type)
	assert.Equal(t, "temp-secret", published.TempPassword)
	assert.Equal(t, "101", published.RoomNumber)
	assert.Equal(t, 2, published.BedNumber)
}

func TestRegistrationService_Confirm_RecordsDepositPayment(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	pending := &entity.Resident{
		ID:                 uuid.New(),
		Email:              "amit123verma@example.com",
		RegistrationStatus: entity.RegistrationPending,
	}
	room := &entity.Room{ID: roomID, Capacity: 2, IsActive: true}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)
	f.roomRepo.EXPECT().OccupiedBeds(ctx, roomID).Return(map[int]struct{}{}, nil)
	f.credentialSvc.EXPECT().GenerateTempPassword().Return("temp-secret", nil)
	f.hasher.EXPECT().Hash("temp-secret").Return("hashed-secret", nil)
	f.credentialSvc.EXPECT().GeneratePGID(pending.Email).Return("PG-AV9999")
	f.residentRepo.EXPECT().Update(ctx, pending).Return(nil)
	f.roomRepo.EXPECT().Update(ctx, room).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(nil)

	var deposit *entity.Payment
	f.paymentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Payment")).
		Run(func(args mock.Arguments) {
			deposit = args.Get(1).(*entity.Payment)
		}).
		Return(nil)

	_, err := f.service.Confirm(ctx, pending.ID, &usecase.ConfirmInput{
		RoomID: roomID,
		Deposit: &usecase.DepositInput{
			Amount: 5000,
			Method: entity.PaymentMethodUPI,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, deposit)
	assert.True(t, deposit.IsDeposit)
	assert.Empty(t, deposit.Months)
	assert.Equal(t, float64(5000), deposit.Amount)
	assert.Equal(t, entity.PaymentStatusPaid, deposit.Status)
	assert.Regexp(t, `^RCPT-\d{8}-\d{6}$`, deposit.ReceiptNumber)
	assert.Equal(t, float64(5000), pending.DepositFees)
}

func TestRegistrationService_Confirm_AlreadyProcessed(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	approved := &entity.Resident{
		ID:                 uuid.New(),
		RegistrationStatus: entity.RegistrationApproved,
	}

	f.residentRepo.EXPECT().FindByID(ctx, approved.ID).Return(approved, nil)

	result, err := f.service.Confirm(ctx, approved.ID, &usecase.ConfirmInput{RoomID: uuid.New()})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationProcessed)
}

func TestRegistrationService_Confirm_RoomFull(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	pending := &entity.Resident{
		ID:                 uuid.New(),
		RegistrationStatus: entity.RegistrationPending,
	}
	room := &entity.Room{ID: roomID, Capacity: 2, CurrentOccupancy: 2, IsActive: true}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)

	result, err := f.service.Confirm(ctx, pending.ID, &usecase.ConfirmInput{RoomID: roomID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRoomFull)
	assert.Equal(t, entity.RegistrationPending, pending.RegistrationStatus)
}

func TestRegistrationService_Confirm_InactiveRoom(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	pending := &entity.Resident{
		ID:                 uuid.New(),
		RegistrationStatus: entity.RegistrationPending,
	}
	room := &entity.Room{ID: roomID, Capacity: 2, IsActive: false}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)

	result, err := f.service.Confirm(ctx, pending.ID, &usecase.ConfirmInput{RoomID: roomID})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestRegistrationService_Confirm_PublishFailureDoesNotFail(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	pending := &entity.Resident{
		ID:                 uuid.New(),
		Email:              "xavier@example.com",
		RegistrationStatus: entity.RegistrationPending,
	}
	room := &entity.Room{ID: roomID, Capacity: 1, IsActive: true}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)
	f.roomRepo.EXPECT().OccupiedBeds(ctx, roomID).Return(map[int]struct{}{}, nil)
	f.credentialSvc.EXPECT().GenerateTempPassword().Return("temp-secret", nil)
	f.hasher.EXPECT().Hash("temp-secret").Return("hashed-secret", nil)
	f.credentialSvc.EXPECT().GeneratePGID(pending.Email).Return("PG-XA1000")
	f.residentRepo.EXPECT().Update(ctx, pending).Return(nil)
	f.roomRepo.EXPECT().Update(ctx, room).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(errors.New("broker down"))

	result, err := f.service.Confirm(ctx, pending.ID, &usecase.ConfirmInput{RoomID: roomID})

	// The approval is committed; credential delivery is retried out of band.
	require.NoError(t, err)
	assert.Equal(t, 1, result.BedNumber)
}

func TestRegistrationService_Confirm_AppliesCheckInDate(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	roomID := uuid.New()
	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	pending := &entity.Resident{
		ID:                 uuid.New(),
		Email:              "priya.patel@example.com",
		RegistrationStatus: entity.RegistrationPending,
	}
	room := &entity.Room{ID: roomID, Capacity: 1, IsActive: true}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.roomRepo.EXPECT().FindByIDForUpdate(ctx, roomID).Return(room, nil)
	f.roomRepo.EXPECT().OccupiedBeds(ctx, roomID).Return(map[int]struct{}{}, nil)
	f.credentialSvc.EXPECT().GenerateTempPassword().Return("temp-secret", nil)
	f.hasher.EXPECT().Hash("temp-secret").Return("hashed-secret", nil)
	f.credentialSvc.EXPECT().GeneratePGID(pending.Email).Return("PG-PP4242")
	f.residentRepo.EXPECT().Update(ctx, pending).Return(nil)
	f.roomRepo.EXPECT().Update(ctx, room).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().
		PublishHostelEvent(ctx, mock.AnythingOfType("*service.HostelEvent")).
		Return(nil)

	_, err := f.service.Confirm(ctx, pending.ID, &usecase.ConfirmInput{
		RoomID:      roomID,
		CheckInDate: checkIn,
		KeyIssued:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, checkIn, *pending.MoveInDate)
	assert.True(t, pending.KeyIssued)
}

func TestRegistrationService_Reject(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	pending := &entity.Resident{
		ID:                 uuid.New(),
		RegistrationStatus: entity.RegistrationPending,
	}

	f.residentRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
	f.residentRepo.EXPECT().Update(ctx, pending).Return(nil)

	err := f.service.Reject(ctx, pending.ID, "no documents provided")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationRejected, pending.RegistrationStatus)
}

func TestRegistrationService_Reject_AlreadyProcessed(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	rejected := &entity.Resident{
		ID:                 uuid.New(),
		RegistrationStatus: entity.RegistrationRejected,
	}

	f.residentRepo.EXPECT().FindByID(ctx, rejected.ID).Return(rejected, nil)

	err := f.service.Reject(ctx, rejected.ID, "again")
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationProcessed)
}
