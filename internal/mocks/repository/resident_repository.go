package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockResidentRepository mocks repository.ResidentRepository.
type MockResidentRepository struct {
	mock.Mock
}

// NewMockResidentRepository creates the mock and verifies its expectations
// during test cleanup.
func NewMockResidentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockResidentRepository {
	m := &MockResidentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockResidentRepository_Expecter registers expectations by method name.
type MockResidentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockResidentRepository) EXPECT() *MockResidentRepository_Expecter {
	return &MockResidentRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockResidentRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockResidentRepository_Expecter) FindByEmail(ctx interface{}, email interface{}) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_e *MockResidentRepository_Expecter) FindByPGID(ctx interface{}, pgID interface{}) *mock.Call {
	return _e.mock.On("FindByPGID", ctx, pgID)
}

func (_e *MockResidentRepository_Expecter) FindActiveByRoom(ctx interface{}, roomID interface{}) *mock.Call {
	return _e.mock.On("FindActiveByRoom", ctx, roomID)
}

func (_e *MockResidentRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_e *MockResidentRepository_Expecter) Create(ctx interface{}, resident interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, resident)
}

func (_e *MockResidentRepository_Expecter) Update(ctx interface{}, resident interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, resident)
}

func (_e *MockResidentRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockResidentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Resident, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Resident
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Resident)
	}

	return r0, ret.Error(1)
}

func (_m *MockResidentRepository) FindByEmail(ctx context.Context, email string) (*entity.Resident, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.Resident
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Resident)
	}

	return r0, ret.Error(1)
}

func (_m *MockResidentRepository) FindByPGID(ctx context.Context, pgID string) (*entity.Resident, error) {
	ret := _m.Called(ctx, pgID)

	var r0 *entity.Resident
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Resident)
	}

	return r0, ret.Error(1)
}

func (_m *MockResidentRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID) ([]*entity.Resident, error) {
	ret := _m.Called(ctx, roomID)

	var r0 []*entity.Resident
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Resident)
	}

	return r0, ret.Error(1)
}

func (_m *MockResidentRepository) List(ctx context.Context, filter repository.ResidentFilter) ([]*entity.Resident, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Resident
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Resident)
	}

	return r0, ret.Error(1)
}

func (_m *MockResidentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	ret := _m.Called(ctx, resident)

	return ret.Error(0)
}

func (_m *MockResidentRepository) Update(ctx context.Context, resident *entity.Resident) error {
	ret := _m.Called(ctx, resident)

	return ret.Error(0)
}

func (_m *MockResidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}
