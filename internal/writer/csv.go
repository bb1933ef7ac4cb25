package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/claritydocs/bizdoc-extractor/internal/models"
)

// CSVWriter writes a canonical document to CSV: optional metadata header
// rows followed by one row per line item. Monetary strings are written
// exactly as extracted; the writer performs no reformatting.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the document to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, doc *models.CanonicalDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, doc)
}

// Write writes the document in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, doc *models.CanonicalDocument) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeHeader {
		meta := [][2]string{
			{"# Document Type", string(doc.DocumentType)},
			{"# Document Number", doc.DocumentNumber},
			{"# Issue Date", doc.IssueDate},
			{"# Company", doc.CompanyName},
			{"# Client", doc.ClientName},
			{"# Subtotal", doc.TotalAmount},
			{"# Tax", doc.TotalTax},
			{"# Grand Total", doc.GrandTotal},
		}
		for _, m := range meta {
			if m[1] != "" {
				cw.Write([]string{m[0], m[1]})
			}
		}
	}

	header := []string{"Product Name", "Quantity", "Unit", "Unit Price", "Total Price", "Tax Rate", "Tax Amount", "Remarks"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, item := range doc.Items {
		row := []string{
			item.ProductName,
			item.Quantity,
			item.Unit,
			item.UnitPrice,
			item.TotalPrice,
			item.TaxRate,
			item.TaxAmount,
			item.Remarks,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}
