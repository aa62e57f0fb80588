package repository

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNotificationRepository mocks repository.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

// NewMockNotificationRepository creates the mock and verifies its
// expectations during test cleanup.
func NewMockNotificationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotificationRepository {
	m := &MockNotificationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockNotificationRepository_Expecter registers expectations by method name.
type MockNotificationRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockNotificationRepository) EXPECT() *MockNotificationRepository_Expecter {
	return &MockNotificationRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockNotificationRepository_Expecter) FindByUser(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("FindByUser", ctx, userID)
}

func (_e *MockNotificationRepository_Expecter) CountUnread(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("CountUnread", ctx, userID)
}

func (_e *MockNotificationRepository_Expecter) Create(ctx interface{}, notification interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, notification)
}

func (_e *MockNotificationRepository_Expecter) MarkRead(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("MarkRead", ctx, id)
}

func (_e *MockNotificationRepository_Expecter) MarkAllRead(ctx interface{}, userID interface{}) *mock.Call {
	return _e.mock.On("MarkAllRead", ctx, userID)
}

func (_m *MockNotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*entity.Notification
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Notification)
	}

	return r0, ret.Error(1)
}

func (_m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, userID)

	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *MockNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	ret := _m.Called(ctx, notification)

	return ret.Error(0)
}

func (_m *MockNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}
