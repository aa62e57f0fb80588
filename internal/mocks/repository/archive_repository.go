package repository

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockArchiveRepository mocks repository.ArchiveRepository.
type MockArchiveRepository struct {
	mock.Mock
}

// NewMockArchiveRepository creates the mock and verifies its expectations
// during test cleanup.
func NewMockArchiveRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArchiveRepository {
	m := &MockArchiveRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockArchiveRepository_Expecter registers expectations by method name.
type MockArchiveRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArchiveRepository) EXPECT() *MockArchiveRepository_Expecter {
	return &MockArchiveRepository_Expecter{mock: &_m.Mock}
}

func (_e *MockArchiveRepository_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *MockArchiveRepository_Expecter) FindByResidentID(ctx interface{}, residentID interface{}) *mock.Call {
	return _e.mock.On("FindByResidentID", ctx, residentID)
}

func (_e *MockArchiveRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_e *MockArchiveRepository_Expecter) Upsert(ctx interface{}, archive interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, archive)
}

func (_e *MockArchiveRepository_Expecter) Update(ctx interface{}, archive interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, archive)
}

func (_m *MockArchiveRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ResidentArchive, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.ResidentArchive
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ResidentArchive)
	}

	return r0, ret.Error(1)
}

func (_m *MockArchiveRepository) FindByResidentID(ctx context.Context, residentID uuid.UUID) (*entity.ResidentArchive, error) {
	ret := _m.Called(ctx, residentID)

	var r0 *entity.ResidentArchive
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.ResidentArchive)
	}

	return r0, ret.Error(1)
}

func (_m *MockArchiveRepository) List(ctx context.Context) ([]*entity.ResidentArchive, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.ResidentArchive
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.ResidentArchive)
	}

	return r0, ret.Error(1)
}

func (_m *MockArchiveRepository) Upsert(ctx context.Context, archive *entity.ResidentArchive) error {
	ret := _m.Called(ctx, archive)

	return ret.Error(0)
}

func (_m *MockArchiveRepository) Update(ctx context.Context, archive *entity.ResidentArchive) error {
	ret := _m.Called(ctx, archive)

	return ret.Error(0)
}
