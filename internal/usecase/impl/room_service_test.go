package impl

import (
	"context"
	"testing"

	"comfortstay/internal/domain/entity"
	domainerrors "comfortstay/internal/domain/errors"
	"comfortstay/internal/domain/repository"
	mockRepo "comfortstay/internal/mocks/repository"
	mockSvc "comfortstay/internal/mocks/service"
	"comfortstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type roomFixture struct {
	service      usecase.RoomUsecase
	roomRepo     *mockRepo.MockRoomRepository
	residentRepo *mockRepo.MockResidentRepository
	roomCache    *mockSvc.MockRoomCache
}

func newRoomFixture(t *testing.T) *roomFixture {
	f := &roomFixture{
		roomRepo:     mockRepo.NewMockRoomRepository(t),
		residentRepo: mockRepo.NewMockResidentRepository(t),
		roomCache:    mockSvc.NewMockRoomCache(t),
	}

	f.service = NewRoomService(RoomServiceParams{
		RoomRepo:     f.roomRepo,
		ResidentRepo: f.residentRepo,
		RoomCache:    f.roomCache,
		Logger:       newDiscardLogger(),
	})

	return f
}

func TestRoomService_CreateRoom_DefaultsStatus(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	f.roomRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Room")).Return(nil)
	f.roomCache.EXPECT().Invalidate(ctx).Return(nil)

	room, err := f.service.CreateRoom(ctx, &usecase.RoomInput{
		Building:   "A",
		RoomNumber: "101",
		Capacity:   3,
		Price:      8000,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoomStatusAvailable, room.Status)
	assert.True(t, room.IsActive)
	assert.Equal(t, 0, room.CurrentOccupancy)
}

func TestRoomService_CreateRoom_DuplicateNumber(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	f.roomRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Room")).
		Return(repository.ErrDuplicateRoom)

	room, err := f.service.CreateRoom(ctx, &usecase.RoomInput{
		Building:   "A",
		RoomNumber: "101",
		Capacity:   3,
		Price:      8000,
	})
	assert.Nil(t, room)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestRoomService_UpdateRoom_CapacityBelowOccupancy(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	room := &entity.Room{ID: uuid.New(), Capacity: 4, CurrentOccupancy: 3}
	f.roomRepo.EXPECT().FindByID(ctx, room.ID).Return(room, nil)

	updated, err := f.service.UpdateRoom(ctx, room.ID, &usecase.RoomInput{
		Building:   "A",
		RoomNumber: "101",
		Capacity:   2,
		Price:      8000,
	})
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestRoomService_DeleteRoom_StillOccupied(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	room := &entity.Room{ID: uuid.New(), Capacity: 2, CurrentOccupancy: 1}
	f.roomRepo.EXPECT().FindByID(ctx, room.ID).Return(room, nil)

	err := f.service.DeleteRoom(ctx, room.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestRoomService_GetRoom_DerivesBedView(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	room := &entity.Room{ID: uuid.New(), Capacity: 2, CurrentOccupancy: 1}
	bedOne := 1
	occupant := &entity.Resident{ID: uuid.New(), Name: "Jane Doe", BedNumber: &bedOne}

	f.roomRepo.EXPECT().FindByID(ctx, room.ID).Return(room, nil)
	f.residentRepo.EXPECT().
		FindActiveByRoom(ctx, room.ID).
		Return([]*entity.Resident{occupant}, nil)

	detail, err := f.service.GetRoom(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, detail.Beds, 2)
	assert.True(t, detail.Beds[0].Occupied)
	assert.Equal(t, "Jane Doe", detail.Beds[0].ResidentName)
	assert.False(t, detail.Beds[1].Occupied)
}

func TestRoomService_AvailableRooms_CacheHit(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	cached := []*entity.Room{{ID: uuid.New(), RoomNumber: "101"}}
	f.roomCache.EXPECT().GetAvailableRooms(ctx).Return(cached, nil)

	rooms, err := f.service.AvailableRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, rooms)
	f.roomRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestRoomService_AvailableRooms_CacheMissFallsThrough(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	listed := []*entity.Room{{ID: uuid.New(), RoomNumber: "102"}}
	active := true

	f.roomCache.EXPECT().GetAvailableRooms(ctx).Return(nil, nil)
	f.roomRepo.EXPECT().
		List(ctx, repository.RoomFilter{OnlyFree: true, IsActive: &active}).
		Return(listed, nil)
	f.roomCache.EXPECT().SetAvailableRooms(ctx, listed).Return(nil)

	rooms, err := f.service.AvailableRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, listed, rooms)
}

func TestRoomService_AvailableRooms_CacheErrorIsAdvisory(t *testing.T) {
	f := newRoomFixture(t)
	ctx := context.Background()

	listed := []*entity.Room{{ID: uuid.New()}}
	active := true

	f.roomCache.EXPECT().GetAvailableRooms(ctx).Return(nil, errors.New("redis down"))
	f.roomRepo.EXPECT().
		List(ctx, repository.RoomFilter{OnlyFree: true, IsActive: &active}).
		Return(listed, nil)
	f.roomCache.EXPECT().
		SetAvailableRooms(ctx, listed).
		Return(errors.New("redis down"))

	rooms, err := f.service.AvailableRooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, listed, rooms)
}
