package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockExpenseRepository mocks repository.ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

// NewMockExpenseRepository creates the mock and verifies its expectations
// during test cleanup.
func NewMockExpenseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExpenseRepository {
	m := &MockExpenseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockExpenseRepository_Expecter registers expectations by method name.
type MockExpenseRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockExpenseRepository) EXPECT() *MockExpenseRepository_Expecter {
	return &MockExpenseRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockExpenseRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockExpenseRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_e *MockExpenseRepository_Expecter) Create(ctx interface{}, expense interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, expense)
}

func (_e *MockExpenseRepository_Expecter) Update(ctx interface{}, expense interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, expense)
}

func (_e *MockExpenseRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Expense)
	}

	return r0, ret.Error(1)
}

func (_m *MockExpenseRepository) List(ctx context.Context, filter repository.ExpenseFilter) ([]*entity.Expense, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Expense
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Expense)
	}

	return r0, ret.Error(1)
}

func (_m *MockExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	ret := _m.Called(ctx, expense)

	return ret.Error(0)
}

func (_m *MockExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	ret := _m.Called(ctx, expense)

	return ret.Error(0)
}

func (_m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}
