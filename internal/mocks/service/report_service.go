package service

import (
	"context"

	"comfortstay/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockReportService mocks service.ReportService.
type MockReportService struct {
	mock.Mock
}

// NewMockReportService creates the mock and verifies its expectations during
// test cleanup.
func NewMockReportService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportService {
	m := &MockReportService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockReportService_Expecter registers expectations by method name.
type MockReportService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReportService) EXPECT() *MockReportService_Expecter {
	return &MockReportService_Expecter{mock: &_m.Mock}
}

func (_e *MockReportService_Expecter) PaymentReport(ctx interface{}, payments interface{}, residents interface{}) *mock.Call {
	return _e.mock.On("PaymentReport", ctx, payments, residents)
}

func (_m *MockReportService) PaymentReport(ctx context.Context, payments []*entity.Payment, residents map[string]*entity.Resident) ([]byte, error) {
	ret := _m.Called(ctx, payments, residents)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}
