package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService mocks service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates the mock and verifies its expectations during
// test cleanup.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockQRCodeService_Expecter registers expectations by method name.
type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_e *MockQRCodeService_Expecter) GenerateReceiptQR(paymentID interface{}, receiptNo interface{}) *mock.Call {
	return _e.mock.On("GenerateReceiptQR", paymentID, receiptNo)
}

func (_e *MockQRCodeService_Expecter) ParseReceiptQR(qrData interface{}) *mock.Call {
	return _e.mock.On("ParseReceiptQR", qrData)
}

func (_m *MockQRCodeService) GenerateReceiptQR(paymentID uuid.UUID, receiptNo string) ([]byte, error) {
	ret := _m.Called(paymentID, receiptNo)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

func (_m *MockQRCodeService) ParseReceiptQR(qrData string) (uuid.UUID, error) {
	ret := _m.Called(qrData)

	return ret.Get(0).(uuid.UUID), ret.Error(1)
}
