package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/grupo-santin/obras-backend-go/internal/domain/master/equipment"
	"github.com/grupo-santin/obras-backend-go/internal/domain/master/jobfunction"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// ==================== JOB FUNCTIONS ====================

type jobFunctionRepositoryImpl struct {
	db *database.DB
}

func NewJobFunctionRepository(db *database.DB) jobfunction.JobFunctionRepository {
	return &jobFunctionRepositoryImpl{db: db}
}

func (r *jobFunctionRepositoryImpl) List(ctx context.Context) ([]string, error) {
	return listReferenceValues(ctx, GetQuerier(ctx, r.db), `SELECT name FROM job_functions ORDER BY name`)
}

func (r *jobFunctionRepositoryImpl) Insert(ctx context.Context, name string) error {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	if normalized == "" {
		return jobfunction.ErrEmptyName
	}

	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `INSERT INTO job_functions (name) VALUES ($1)`, normalized)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return jobfunction.ErrFunctionExists
		}
		return fmt.Errorf("failed to insert job function: %w", err)
	}
	return nil
}

func (r *jobFunctionRepositoryImpl) Delete(ctx context.Context, name string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `DELETE FROM job_functions WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete job function: %w", err)
	}
	return nil
}

// ==================== EQUIPMENT ====================

type equipmentRepositoryImpl struct {
	db *database.DB
}

func NewEquipmentRepository(db *database.DB) equipment.EquipmentRepository {
	return &equipmentRepositoryImpl{db: db}
}

func (r *equipmentRepositoryImpl) List(ctx context.Context) ([]string, error) {
	return listReferenceValues(ctx, GetQuerier(ctx, r.db), `SELECT tag FROM equipment ORDER BY tag`)
}

func (r *equipmentRepositoryImpl) Insert(ctx context.Context, tag string) error {
	normalized := strings.ToUpper(strings.TrimSpace(tag))
	if normalized == "" {
		return equipment.ErrEmptyTag
	}

	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `INSERT INTO equipment (tag) VALUES ($1)`, normalized)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return equipment.ErrEquipmentExists
		}
		return fmt.Errorf("failed to insert equipment tag: %w", err)
	}
	return nil
}

func (r *equipmentRepositoryImpl) Delete(ctx context.Context, tag string) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `DELETE FROM equipment WHERE tag = $1`, tag)
	if err != nil {
		return fmt.Errorf("failed to delete equipment tag: %w", err)
	}
	return nil
}

func listReferenceValues(ctx context.Context, q database.Querier, query string) ([]string, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}
