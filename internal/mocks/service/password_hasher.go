// Package service provides hand-maintained testify mocks for the domain
// service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates the mock and verifies its expectations
// during test cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordHasher_Expecter registers expectations by method name.
type MockPasswordHasher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPasswordHasher) EXPECT() *MockPasswordHasher_Expecter {
	return &MockPasswordHasher_Expecter{mock: &_m.Mock}
}

func (_e *MockPasswordHasher_Expecter) Hash(password interface{}) *mock.Call {
	return _e.mock.On("Hash", password)
}

func (_e *MockPasswordHasher_Expecter) Check(password interface{}, hash interface{}) *mock.Call {
	return _e.mock.On("Check", password, hash)
}

func (_m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := _m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (_m *MockPasswordHasher) Check(password, hash string) bool {
	ret := _m.Called(password, hash)

	return ret.Bool(0)
}
