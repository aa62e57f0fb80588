// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/errors"

	"github.com/google/uuid"
)

// ErrArchiveNotFound is returned when an archive record is not found.
var ErrArchiveNotFound = errors.New("archive record not found")

// ArchiveRepository defines the standard operations for checkout archive persistence.
// Archives are keyed by the departed resident's ID: a second checkout attempt for
// the same resident updates the existing record rather than creating another.
type ArchiveRepository interface {
	// FindByID retrieves an archive record by its own unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ResidentArchive, error)

	// FindByResidentID retrieves the archive record for a departed resident.
	FindByResidentID(ctx context.Context, residentID uuid.UUID) (*entity.ResidentArchive, error)

	// List retrieves archive records, most recent checkout first.
	List(ctx context.Context) ([]*entity.ResidentArchive, error)

	// Upsert creates the archive record for a resident, or updates the
	// existing one when the resident was archived before.
	Upsert(ctx context.Context, archive *entity.ResidentArchive) error

	// Update modifies an existing archive record (exit survey, refunds).
	Update(ctx context.Context, archive *entity.ResidentArchive) error
}
