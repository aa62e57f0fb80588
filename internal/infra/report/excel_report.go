// Package report renders admin exports as xlsx workbooks.
package report

import (
	"context"
	"fmt"
	"strings"

	"comfortstay/internal/domain/entity"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/errors"

	"github.com/xuri/excelize/v2"
)

const paymentSheet = "Payments"

var paymentHeaders = []string{
	"Receipt No", "Resident", "PG ID", "Amount", "Months",
	"Payment Date", "Status", "Method", "Deposit", "Remarks",
}

// excelReportService implements service.ReportService with excelize.
type excelReportService struct{}

// NewExcelReportService is the constructor for excelReportService.
func NewExcelReportService() service.ReportService {
	return &excelReportService{}
}

// PaymentReport renders the given payments as an xlsx workbook. The residents
// map is keyed by resident ID string; unknown residents render with a blank
// name rather than failing the export.
func (s *excelReportService) PaymentReport(_ context.Context, payments []*entity.Payment, residents map[string]*entity.Resident) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), paymentSheet)

	for col, header := range paymentHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build header cell name")
		}
		if err := f.SetCellValue(paymentSheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "failed to write header cell")
		}
	}

	for i, payment := range payments {
		var name, pgID string
		if resident, ok := residents[payment.ResidentID.String()]; ok {
			name = resident.Name
			pgID = resident.PGID
		}

		deposit := "No"
		if payment.IsDeposit {
			deposit = "Yes"
		}

		values := []any{
			payment.ReceiptNumber,
			name,
			pgID,
			payment.Amount,
			strings.Join(payment.Months, ", "),
			payment.PaymentDate.Format("2006-01-02"),
			string(payment.Status),
			string(payment.Method),
			deposit,
			payment.Remarks,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build data cell name")
			}
			if err := f.SetCellValue(paymentSheet, cell, value); err != nil {
				return nil, errors.Wrap(err, fmt.Sprintf("failed to write row %d", i+2))
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize payment report")
	}

	return buf.Bytes(), nil
}
