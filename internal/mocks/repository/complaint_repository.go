package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockComplaintRepository mocks repository.ComplaintRepository.
type MockComplaintRepository struct {
	mock.Mock
}

// NewMockComplaintRepository creates the mock and verifies its expectations
// during test cleanup.
func NewMockComplaintRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockComplaintRepository {
	m := &MockComplaintRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockComplaintRepository_Expecter registers expectations by method name.
type MockComplaintRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockComplaintRepository) EXPECT() *MockComplaintRepository_Expecter {
	return &MockComplaintRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockComplaintRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockComplaintRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_e *MockComplaintRepository_Expecter) Create(ctx interface{}, complaint interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, complaint)
}

func (_e *MockComplaintRepository_Expecter) Update(ctx interface{}, complaint interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, complaint)
}

func (_e *MockComplaintRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockComplaintRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Complaint, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Complaint
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Complaint)
	}

	return r0, ret.Error(1)
}

func (_m *MockComplaintRepository) List(ctx context.Context, filter repository.ComplaintFilter) ([]*entity.Complaint, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Complaint
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Complaint)
	}

	return r0, ret.Error(1)
}

func (_m *MockComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	ret := _m.Called(ctx, complaint)

	return ret.Error(0)
}

func (_m *MockComplaintRepository) Update(ctx context.Context, complaint *entity.Complaint) error {
	ret := _m.Called(ctx, complaint)

	return ret.Error(0)
}

func (_m *MockComplaintRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}
