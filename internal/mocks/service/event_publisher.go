package service

import (
	"context"

	"comfortstay/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockEventPublisher mocks service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates the mock and verifies its expectations during
// test cleanup.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockEventPublisher_Expecter registers expectations by method name.
type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

func (_e *MockEventPublisher_Expecter) PublishHostelEvent(ctx interface{}, event interface{}) *mock.Call {
	return _e.mock.On("PublishHostelEvent", ctx, event)
}

func (_e *MockEventPublisher_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

func (_m *MockEventPublisher) PublishHostelEvent(ctx context.Context, event *service.HostelEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

func (_m *MockEventPublisher) Close() error {
	ret := _m.Called()

	return ret.Error(0)
}
