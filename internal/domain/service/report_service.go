package service

import (
	"context"

	"comfortstay/internal/domain/entity"
)

// ReportService renders admin exports. Implementations produce complete file
// contents in memory; callers own delivery (HTTP attachment, mail).
type ReportService interface {
	// PaymentReport renders the given payments as an xlsx workbook and
	// returns the serialized file.
	PaymentReport(ctx context.Context, payments []*entity.Payment, residents map[string]*entity.Resident) ([]byte, error)
}
