package service

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockRoomCache mocks service.RoomCache.
type MockRoomCache struct {
	mock.Mock
}

// NewMockRoomCache creates the mock and verifies its expectations during
// test cleanup.
func NewMockRoomCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRoomCache {
	m := &MockRoomCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRoomCache_Expecter registers expectations by method name.
type MockRoomCache_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRoomCache) EXPECT() *MockRoomCache_Expecter {
	return &MockRoomCache_Expecter{mock: &_m.Mock}
}

func (_e *MockRoomCache_Expecter) GetAvailableRooms(ctx interface{}) *mock.Call {
	return _e.mock.On("GetAvailableRooms", ctx)
}

func (_e *MockRoomCache_Expecter) SetAvailableRooms(ctx interface{}, rooms interface{}) *mock.Call {
	return _e.mock.On("SetAvailableRooms", ctx, rooms)
}

func (_e *MockRoomCache_Expecter) Invalidate(ctx interface{}) *mock.Call {
	return _e.mock.On("Invalidate", ctx)
}

func (_m *MockRoomCache) GetAvailableRooms(ctx context.Context) ([]*entity.Room, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Room)
	}

	return r0, ret.Error(1)
}

func (_m *MockRoomCache) SetAvailableRooms(ctx context.Context, rooms []*entity.Room) error {
	ret := _m.Called(ctx, rooms)

	return ret.Error(0)
}

func (_m *MockRoomCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)

	return ret.Error(0)
}
