package service

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialService mocks service.CredentialService.
type MockCredentialService struct {
	mock.Mock
}

// NewMockCredentialService creates the mock and verifies its expectations
// during test cleanup.
func NewMockCredentialService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialService {
	m := &MockCredentialService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCredentialService_Expecter registers expectations by method name.
type MockCredentialService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCredentialService) EXPECT() *MockCredentialService_Expecter {
	return &MockCredentialService_Expecter{mock: &_m.Mock}
}

func (_e *MockCredentialService_Expecter) GeneratePGID(email interface{}) *mock.Call {
	return _e.mock.On("GeneratePGID", email)
}

func (_e *MockCredentialService_Expecter) GenerateTempPassword() *mock.Call {
	return _e.mock.On("GenerateTempPassword")
}

func (_m *MockCredentialService) GeneratePGID(email string) string {
	ret := _m.Called(email)

	return ret.String(0)
}

func (_m *MockCredentialService) GenerateTempPassword() (string, error) {
	ret := _m.Called()

	return ret.String(0), ret.Error(1)
}
