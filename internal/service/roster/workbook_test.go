package roster

import (
	"bytes"
	"testing"

	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseWorkbook(t *testing.T) {
	t.Run("reads header and data rows", func(t *testing.T) {
		buf := buildWorkbook(t, SheetName, [][]interface{}{
			{"Date", "EmployeeID", "Name", "Function", "StatusCode", "SituationLabel"},
			{"2024-03-01", "100", "Ana Souza", "Montador", "1", "Trabalhando"},
			{"2024-03-01", "101", "Bruno Lima", "Soldador", "2", "Atestado"},
		})

		batch, err := ParseWorkbook(buf)
		require.NoError(t, err)
		assert.Equal(t, roster.RequiredColumns, batch.Columns)
		require.Len(t, batch.Rows, 2)
		assert.Equal(t, "Ana Souza", batch.Rows[0][2])
	})

	t.Run("pads short rows to header width", func(t *testing.T) {
		buf := buildWorkbook(t, SheetName, [][]interface{}{
			{"Date", "EmployeeID", "Name", "Function", "StatusCode", "SituationLabel"},
			{"2024-03-01", "100", "Ana Souza"},
		})

		batch, err := ParseWorkbook(buf)
		require.NoError(t, err)
		require.Len(t, batch.Rows, 1)
		assert.Len(t, batch.Rows[0], 6)
	})

	t.Run("skips blank rows", func(t *testing.T) {
		buf := buildWorkbook(t, SheetName, [][]interface{}{
			{"Date", "EmployeeID", "Name", "Function", "StatusCode", "SituationLabel"},
			{"", "", "", "", "", ""},
			{"2024-03-01", "100", "Ana Souza", "Montador", "1", "Trabalhando"},
		})

		batch, err := ParseWorkbook(buf)
		require.NoError(t, err)
		assert.Len(t, batch.Rows, 1)
	})

	t.Run("wrong sheet name is rejected", func(t *testing.T) {
		buf := buildWorkbook(t, "Planilha1", [][]interface{}{
			{"Date", "EmployeeID", "Name", "Function", "StatusCode", "SituationLabel"},
		})

		_, err := ParseWorkbook(buf)
		assert.ErrorIs(t, err, roster.ErrSheetNotFound)
	})

	t.Run("not a workbook at all", func(t *testing.T) {
		_, err := ParseWorkbook(bytes.NewBufferString("date,id,name"))
		assert.Error(t, err)
	})
}
