package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/yasboop/docextract/constants"
	"github.com/yasboop/docextract/internal/extract"
	"github.com/yasboop/docextract/internal/patterns"
)

// Service turns canonical invoice records into an XLSX workbook for
// downstream accounting tools.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

var invoiceColumns = []struct {
	header string
	field  string
}{
	{"Invoice Number", patterns.FieldInvoiceNumber},
	{"Supplier", patterns.FieldSupplierName},
	{"Invoice Date", patterns.FieldInvoiceDate},
	{"Total Amount", patterns.FieldTotalAmount},
	{"VAT Amount", patterns.FieldVATAmount},
	{"Due Date", patterns.FieldPaymentDueDate},
	{"Purchase Order", patterns.FieldPurchaseOrder},
	{"Tax ID", patterns.FieldTaxID},
	{"Payment Terms", patterns.FieldPaymentTerms},
	{"Extraction Method", constants.KeyExtractionMethod},
}

// InvoicesXLSX returns an XLSX workbook (as bytes) for the given canonical
// invoice records. Non-invoice records are skipped with a warning.
func (s *Service) InvoicesXLSX(records []extract.CanonicalRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, col := range invoiceColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col.header)
	}

	row := 2
	skipped := 0
	for _, r := range records {
		if dt, _ := r[constants.KeyDocumentType].(string); dt != "" && dt != string(constants.Invoice) {
			skipped++
			continue
		}
		for i, col := range invoiceColumns {
			v, ok := r[col.field]
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, truncate(fmt.Sprintf("%v", v), 140))
		}
		row++
	}
	if skipped > 0 {
		s.logger.Warn("export.skipped_non_invoices", "count", skipped)
	}

	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "F", 14)
	_ = f.SetColWidth(sheet, "G", "I", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.invoices.ok",
		"rows", row-2,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
