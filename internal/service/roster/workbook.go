package roster

import (
	"fmt"
	"io"

	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/xuri/excelize/v2"
)

// SheetName is the workbook sheet holding roster data. Other sheets in
// the same file are ignored.
const SheetName = "Efetivo"

// ParseWorkbook reads an uploaded .xlsx file into the tabular batch the
// ingestion service consumes. The first row of the roster sheet is the
// header; column validation happens during ingestion, not here.
func ParseWorkbook(r io.Reader) (roster.UploadBatch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return roster.UploadBatch{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return roster.UploadBatch{}, roster.ErrSheetNotFound
	}
	if len(rows) == 0 {
		return roster.UploadBatch{}, roster.ErrEmptyBatch
	}

	header := rows[0]

	// excelize trims trailing empty cells; pad data rows so positional
	// lookups stay in bounds.
	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		data = append(data, row)
	}

	return roster.UploadBatch{Columns: header, Rows: data}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
