package repository

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVisitRequestRepository mocks repository.VisitRequestRepository.
type MockVisitRequestRepository struct {
	mock.Mock
}

// NewMockVisitRequestRepository creates the mock and verifies its
// expectations during test cleanup.
func NewMockVisitRequestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVisitRequestRepository {
	m := &MockVisitRequestRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockVisitRequestRepository_Expecter registers expectations by method name.
type MockVisitRequestRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockVisitRequestRepository) EXPECT() *MockVisitRequestRepository_Expecter {
	return &MockVisitRequestRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockVisitRequestRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockVisitRequestRepository_Expecter) List(ctx interface{}, status interface{}) *mock.Call {
	return _e.mock.On("List", ctx, status)
}

func (_e *MockVisitRequestRepository_Expecter) Create(ctx interface{}, request interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, request)
}

func (_e *MockVisitRequestRepository_Expecter) Update(ctx interface{}, request interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, request)
}

func (_m *MockVisitRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.VisitRequest, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.VisitRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.VisitRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockVisitRequestRepository) List(ctx context.Context, status entity.VisitStatus) ([]*entity.VisitRequest, error) {
	ret := _m.Called(ctx, status)

	var r0 []*entity.VisitRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.VisitRequest)
	}

	return r0, ret.Error(1)
}

func (_m *MockVisitRequestRepository) Create(ctx context.Context, request *entity.VisitRequest) error {
	ret := _m.Called(ctx, request)

	return ret.Error(0)
}

func (_m *MockVisitRequestRepository) Update(ctx context.Context, request *entity.VisitRequest) error {
	ret := _m.Called(ctx, request)

	return ret.Error(0)
}
