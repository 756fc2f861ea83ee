package kvstore

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster/internal/application/analytics"
	"github.com/jhoicas/stockmaster/internal/application/dto"
)

var _ analytics.ValuationStore = (*PostgresValuationStore)(nil)

const createValuationTable = `
	CREATE TABLE IF NOT EXISTS project_valuations (
		id                 BIGSERIAL PRIMARY KEY,
		project_id         TEXT NOT NULL,
		project_name       TEXT NOT NULL,
		total_value        NUMERIC(20,2) NOT NULL,
		out_of_stock_count INTEGER NOT NULL,
		recorded_at        TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_project_valuations_project
		ON project_valuations (project_id, recorded_at DESC)`

// PostgresValuationStore historial de valorización en project_valuations.
// total_value viaja como NUMERIC <-> decimal.Decimal mediante el codec registrado en NewPool.
type PostgresValuationStore struct {
	q Querier
}

// NewPostgresValuationStore construye el adaptador. Pasar pool o tx (Querier).
func NewPostgresValuationStore(q Querier) *PostgresValuationStore {
	return &PostgresValuationStore{q: q}
}

// EnsureSchema crea la tabla project_valuations si no existe.
func (s *PostgresValuationStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, createValuationTable); err != nil {
		return fmt.Errorf("crear tabla project_valuations: %w", err)
	}
	return nil
}

// RecordValuations inserta una fila por proyecto.
func (s *PostgresValuationStore) RecordValuations(ctx context.Context, points []dto.ValuationPoint) error {
	query := `
		INSERT INTO project_valuations (project_id, project_name, total_value, out_of_stock_count, recorded_at)
		VALUES ($1, $2, $3, $4, $5)`
	for _, p := range points {
		if _, err := s.q.Exec(ctx, query,
			p.ProjectID, p.ProjectName, p.TotalValue.Round(2), p.OutOfStockCount, p.RecordedAt,
		); err != nil {
			return fmt.Errorf("insertar valorización %s: %w", p.ProjectID, err)
		}
	}
	return nil
}

// ValuationHistory devuelve las últimas limit valorizaciones del proyecto, la más reciente primero.
func (s *PostgresValuationStore) ValuationHistory(ctx context.Context, projectID string, limit int) ([]dto.ValuationPoint, error) {
	query := `
		SELECT project_id, project_name, total_value, out_of_stock_count, recorded_at
		FROM project_valuations
		WHERE project_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2`
	rows, err := s.q.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("historial de valorización %s: %w", projectID, err)
	}
	defer rows.Close()

	out := []dto.ValuationPoint{}
	for rows.Next() {
		var (
			p     dto.ValuationPoint
			total decimal.Decimal
		)
		if err := rows.Scan(&p.ProjectID, &p.ProjectName, &total, &p.OutOfStockCount, &p.RecordedAt); err != nil {
			return nil, fmt.Errorf("leer valorización: %w", err)
		}
		p.TotalValue = total
		p.RecordedAt = p.RecordedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("historial de valorización %s: %w", projectID, err)
	}
	return out, nil
}
