package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository mocks repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates the mock and verifies its expectations
// during test cleanup.
func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPaymentRepository_Expecter registers expectations by method name.
type MockPaymentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPaymentRepository) EXPECT() *MockPaymentRepository_Expecter {
	return &MockPaymentRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockPaymentRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockPaymentRepository_Expecter) FindByResident(ctx interface{}, residentID interface{}) *mock.Call {
	return _e.mock.On("FindByResident", ctx, residentID)
}

func (_e *MockPaymentRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_e *MockPaymentRepository_Expecter) CoveredMonths(ctx interface{}, residentID interface{}) *mock.Call {
	return _e.mock.On("CoveredMonths", ctx, residentID)
}

func (_e *MockPaymentRepository_Expecter) Create(ctx interface{}, payment interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, payment)
}

func (_e *MockPaymentRepository_Expecter) Update(ctx interface{}, payment interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, payment)
}

func (_e *MockPaymentRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) FindByResident(ctx context.Context, residentID uuid.UUID) ([]*entity.Payment, error) {
	ret := _m.Called(ctx, residentID)

	var r0 []*entity.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) List(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Payment)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) CoveredMonths(ctx context.Context, residentID uuid.UUID) ([]string, error) {
	ret := _m.Called(ctx, residentID)

	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}

	return r0, ret.Error(1)
}

func (_m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	ret := _m.Called(ctx, payment)

	return ret.Error(0)
}

func (_m *MockPaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	ret := _m.Called(ctx, payment)

	return ret.Error(0)
}

func (_m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}
