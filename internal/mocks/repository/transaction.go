// Package repository provides hand-maintained testify mocks for the
// persistence interfaces.
package repository

import (
	"context"

	"comfortstay/internal/domain/repository"
)

// MockTransactionManager satisfies repository.TransactionManager by running
// the transaction body against a fixed repository factory, with no real
// transaction semantics. Set BeginErr to simulate a transaction that cannot
// start.
type MockTransactionManager struct {
	Factory  repository.RepositoryFactory
	BeginErr error
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.BeginErr != nil {
		return m.BeginErr
	}

	return fn(m.Factory)
}

// MockRepositoryFactory hands out the configured repository mocks as the
// transaction-bound instances.
type MockRepositoryFactory struct {
	RoomRepo     repository.RoomRepository
	ResidentRepo repository.ResidentRepository
	ArchiveRepo  repository.ArchiveRepository
	PaymentRepo  repository.PaymentRepository
}

func (f *MockRepositoryFactory) NewRoomRepository() repository.RoomRepository {
	return f.RoomRepo
}

func (f *MockRepositoryFactory) NewResidentRepository() repository.ResidentRepository {
	return f.ResidentRepo
}

func (f *MockRepositoryFactory) NewArchiveRepository() repository.ArchiveRepository {
	return f.ArchiveRepo
}

func (f *MockRepositoryFactory) NewPaymentRepository() repository.PaymentRepository {
	return f.PaymentRepo
}
