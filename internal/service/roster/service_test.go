package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grupo-santin/obras-backend-go/internal/domain/roster"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRosterRepo implements roster.RosterRepository in memory with the
// same replace semantics as the PostgreSQL implementation.
type fakeRosterRepo struct {
	rows    []roster.Snapshot
	failure error
}

func (f *fakeRosterRepo) List(ctx context.Context) ([]roster.Snapshot, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	return append([]roster.Snapshot(nil), f.rows...), nil
}

func (f *fakeRosterRepo) BulkInsert(ctx context.Context, rows []roster.Snapshot) error {
	if f.failure != nil {
		return f.failure
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeRosterRepo) DeleteByDate(ctx context.Context, date time.Time) error {
	if f.failure != nil {
		return f.failure
	}
	kept := f.rows[:0]
	for _, row := range f.rows {
		if !row.Date.Equal(date) {
			kept = append(kept, row)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakeRosterRepo) ReplaceForDates(ctx context.Context, dates []time.Time, rows []roster.Snapshot) error {
	if f.failure != nil {
		return f.failure
	}
	for _, d := range dates {
		_ = f.DeleteByDate(ctx, d)
	}
	return f.BulkInsert(ctx, rows)
}

func validBatch() roster.UploadBatch {
	return roster.UploadBatch{
		Columns: []string{"Date", "EmployeeID", "Name", "Function", "StatusCode", "SituationLabel"},
		Rows: [][]string{
			{"2024-03-01", "100", "Ana Souza", "Montador", "1", "Trabalhando"},
			{"2024-03-01", "101", "Bruno Lima", "Soldador", "2", "Atestado"},
			{"2024-03-02", "100", "Ana Souza", "Montador", "1", "Trabalhando"},
		},
	}
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces rows per date", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewIngestionService(repo)

		result, err := svc.Ingest(ctx, validBatch())
		require.NoError(t, err)
		assert.Equal(t, 3, result.RowsInserted)
		assert.Equal(t, []string{"2024-03-01", "2024-03-02"}, result.DatesReplaced)
		assert.Len(t, repo.rows, 3)
	})

	t.Run("re-ingest is idempotent", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewIngestionService(repo)

		_, err := svc.Ingest(ctx, validBatch())
		require.NoError(t, err)
		_, err = svc.Ingest(ctx, validBatch())
		require.NoError(t, err)

		assert.Len(t, repo.rows, 3, "second upload must replace, not accumulate")
	})

	t.Run("replace does not merge with previous upload", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewIngestionService(repo)

		_, err := svc.Ingest(ctx, validBatch())
		require.NoError(t, err)

		// Second upload drops Bruno from 2024-03-01.
		smaller := roster.UploadBatch{
			Columns: validBatch().Columns,
			Rows: [][]string{
				{"2024-03-01", "100", "Ana Souza", "Montador", "1", "Trabalhando"},
			},
		}
		_, err = svc.Ingest(ctx, smaller)
		require.NoError(t, err)

		for _, row := range repo.rows {
			if row.Date.Format("2006-01-02") == "2024-03-01" {
				assert.Equal(t, "100", row.Matricula)
			}
		}
		// The untouched date survives.
		assert.Len(t, repo.rows, 2)
	})

	t.Run("missing columns are all reported", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewIngestionService(repo)

		batch := roster.UploadBatch{
			Columns: []string{"Date", "Name"},
			Rows:    [][]string{{"2024-03-01", "Ana Souza"}},
		}
		_, err := svc.Ingest(ctx, batch)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details, "EmployeeID")
		assert.Contains(t, details, "Function")
		assert.Contains(t, details, "StatusCode")
		assert.Contains(t, details, "SituationLabel")
		assert.NotContains(t, details, "Date")
		assert.Empty(t, repo.rows, "no writes on invalid batch")
	})

	t.Run("invalid rows block the whole batch", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewIngestionService(repo)

		batch := validBatch()
		batch.Rows = append(batch.Rows, []string{"not-a-date", "102", "Caio", "Ajudante", "1", "Trabalhando"})
		batch.Rows = append(batch.Rows, []string{"2024-03-01", "103", "Davi", "Ajudante", "abc", "Trabalhando"})

		_, err := svc.Ingest(ctx, batch)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		details := errs.ToMap()
		assert.Contains(t, details, "row 5")
		assert.Contains(t, details, "row 6")
		assert.Empty(t, repo.rows, "no writes on invalid batch")
	})

	t.Run("day-first dates are accepted", func(t *testing.T) {
		repo := &fakeRosterRepo{}
		svc := NewIngestionService(repo)

		batch := roster.UploadBatch{
			Columns: validBatch().Columns,
			Rows: [][]string{
				{"05/03/2024", "100", "Ana Souza", "Montador", "1", "Trabalhando"},
			},
		}
		result, err := svc.Ingest(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03-05"}, result.DatesReplaced)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		svc := NewIngestionService(&fakeRosterRepo{})

		_, err := svc.Ingest(ctx, roster.UploadBatch{Columns: validBatch().Columns})
		assert.ErrorIs(t, err, roster.ErrEmptyBatch)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		repo := &fakeRosterRepo{failure: errors.New("connection lost")}
		svc := NewIngestionService(repo)

		_, err := svc.Ingest(ctx, validBatch())
		assert.Error(t, err)
	})
}

func TestDeleteDate(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRosterRepo{}
	svc := NewIngestionService(repo)

	_, err := svc.Ingest(ctx, validBatch())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDate(ctx, "2024-03-01"))
	assert.Len(t, repo.rows, 1)

	err = svc.DeleteDate(ctx, "01-03-2024")
	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}
