package writer

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// XLSXWriter produces an XLSX workbook for a canonical document: a metadata
// block at the top of the sheet, then the item table. Returned as bytes so
// the caller owns file or network state.
type XLSXWriter struct{}

// Write renders the document into a single-sheet workbook.
func (w *XLSXWriter) Write(doc *models.CanonicalDocument) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Document"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet so the workbook opens on Document.
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	row := 1
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	meta := [][2]string{
		{"Document Type", string(doc.DocumentType)},
		{"Document Number", doc.DocumentNumber},
		{"Issue Date", doc.IssueDate},
		{"Company", doc.CompanyName},
		{"Company Address", doc.CompanyAddress},
		{"Client", doc.ClientName},
		{"Client Address", doc.ClientAddress},
		{"Subtotal", doc.TotalAmount},
		{"Tax", doc.TotalTax},
		{"Grand Total", doc.GrandTotal},
	}
	for _, m := range meta {
		if m[1] == "" {
			continue
		}
		write(1, m[0])
		write(2, m[1])
		row++
	}
	row++ // blank separator row

	headers := []string{"Product Name", "Quantity", "Unit", "Unit Price", "Total Price", "Tax Rate", "Tax Amount", "Remarks"}
	for i, h := range headers {
		write(i+1, h)
	}
	row++

	for _, item := range doc.Items {
		cols := []string{
			item.ProductName,
			item.Quantity,
			item.Unit,
			item.UnitPrice,
			item.TotalPrice,
			item.TaxRate,
			item.TaxAmount,
			item.Remarks,
		}
		for i, v := range cols {
			write(i+1, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteToFile writes the workbook to the given path.
func (w *XLSXWriter) WriteToFile(path string, doc *models.CanonicalDocument) error {
	data, err := w.Write(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return nil
}
