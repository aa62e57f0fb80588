package service

import (
	"context"

	"comfortstay/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockMailer mocks service.Mailer.
type MockMailer struct {
	mock.Mock
}

// NewMockMailer creates the mock and verifies its expectations during test
// cleanup.
func NewMockMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockMailer_Expecter registers expectations by method name.
type MockMailer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMailer) EXPECT() *MockMailer_Expecter {
	return &MockMailer_Expecter{mock: &_m.Mock}
}

func (_e *MockMailer_Expecter) Send(ctx interface{}, mail interface{}) *mock.Call {
	return _e.mock.On("Send", ctx, mail)
}

func (_m *MockMailer) Send(ctx context.Context, mail *service.Mail) error {
	ret := _m.Called(ctx, mail)

	return ret.Error(0)
}
