package roster

// Required upload columns, in the order they appear in the template. The
// header match is case-sensitive and accent-free.
var RequiredColumns = []string{
	"Date",
	"EmployeeID",
	"Name",
	"Function",
	"StatusCode",
	"SituationLabel",
}

// UploadBatch is the validated tabular form of an uploaded roster file:
// a header row plus positional data rows. Produced by the workbook
// parser, consumed by the ingestion service.
type UploadBatch struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SnapshotResponse represents one roster row in listings.
type SnapshotResponse struct {
	Date           string `json:"date"`
	Matricula      string `json:"matricula"`
	EmployeeName   string `json:"employee_name"`
	JobFunction    string `json:"job_function"`
	StatusCode     int    `json:"status_code"`
	SituationLabel string `json:"situation_label"`
}

// IngestResult summarizes a processed upload.
type IngestResult struct {
	RowsInserted  int      `json:"rows_inserted"`
	DatesReplaced []string `json:"dates_replaced"`
}
