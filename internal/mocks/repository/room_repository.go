package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRoomRepository mocks repository.RoomRepository.
type MockRoomRepository struct {
	mock.Mock
}

// NewMockRoomRepository creates the mock and verifies its expectations during
// test cleanup.
func NewMockRoomRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoomRepository {
	m := &MockRoomRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRoomRepository_Expecter registers expectations by method name.
type MockRoomRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRoomRepository) EXPECT() *MockRoomRepository_Expecter {
	return &MockRoomRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockRoomRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockRoomRepository_Expecter) FindByIDForUpdate(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByIDForUpdate", ctx, id)
}

func (_e *MockRoomRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_e *MockRoomRepository_Expecter) Create(ctx interface{}, room interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, room)
}

func (_e *MockRoomRepository_Expecter) Update(ctx interface{}, room interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, room)
}

func (_e *MockRoomRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_e *MockRoomRepository_Expecter) OccupiedBeds(ctx interface{}, roomID interface{}) *mock.Call {
	return _e.mock.On("OccupiedBeds", ctx, roomID)
}

func (_m *MockRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Room)
	}

	return r0, ret.Error(1)
}

func (_m *MockRoomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Room)
	}

	return r0, ret.Error(1)
}

func (_m *MockRoomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]*entity.Room, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Room)
	}

	return r0, ret.Error(1)
}

func (_m *MockRoomRepository) Create(ctx context.Context, room *entity.Room) error {
	ret := _m.Called(ctx, room)

	return ret.Error(0)
}

func (_m *MockRoomRepository) Update(ctx context.Context, room *entity.Room) error {
	ret := _m.Called(ctx, room)

	return ret.Error(0)
}

func (_m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *MockRoomRepository) OccupiedBeds(ctx context.Context, roomID uuid.UUID) (map[int]struct{}, error) {
	ret := _m.Called(ctx, roomID)

	var r0 map[int]struct{}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int]struct{})
	}

	return r0, ret.Error(1)
}
