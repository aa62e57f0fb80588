package service

import (
	"time"

	"comfortstay/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService mocks service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and verifies its expectations during
// test cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenService_Expecter registers expectations by method name.
type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_e *MockTokenService_Expecter) GenerateTokens(userID interface{}, role interface{}) *mock.Call {
	return _e.mock.On("GenerateTokens", userID, role)
}

func (_e *MockTokenService_Expecter) ValidateToken(tokenString interface{}) *mock.Call {
	return _e.mock.On("ValidateToken", tokenString)
}

func (_e *MockTokenService_Expecter) GetRefreshTokenDuration() *mock.Call {
	return _e.mock.On("GetRefreshTokenDuration")
}

func (_m *MockTokenService) GenerateTokens(userID uuid.UUID, role string) (string, string, error) {
	ret := _m.Called(userID, role)

	return ret.String(0), ret.String(1), ret.Error(2)
}

func (_m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	var r0 *service.Claims
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	return r0, ret.Error(1)
}

func (_m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	ret := _m.Called()

	return ret.Get(0).(time.Duration)
}
