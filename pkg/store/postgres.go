package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amoreau/repartition/pkg/audit"
	"github.com/amoreau/repartition/pkg/validate"
)

// schema is applied once per pool; CREATE TABLE IF NOT EXISTS keeps
// repeated runs against a fresh database idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS optimizer_runs (
	run_id          uuid PRIMARY KEY,
	started_at      timestamptz NOT NULL,
	finished_at     timestamptz NOT NULL,
	state           text NOT NULL,
	swaps_applied   integer NOT NULL,
	swaps_three_way integer NOT NULL,
	exhausted       boolean NOT NULL,
	violations      jsonb NOT NULL,
	audit_report    jsonb
)`

// PostgresStore persists RunRecords to a Postgres table via pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to dsn and ensures the run table exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// SaveRun inserts run, generating a run id if one was not already set.
func (s *PostgresStore) SaveRun(ctx context.Context, run RunRecord) error {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}

	violationsJSON, err := json.Marshal(run.Violations)
	if err != nil {
		return fmt.Errorf("failed to marshal violations: %w", err)
	}

	var auditJSON []byte
	if run.AuditReport != nil {
		auditJSON, err = json.Marshal(run.AuditReport)
		if err != nil {
			return fmt.Errorf("failed to marshal audit report: %w", err)
		}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO optimizer_runs
			(run_id, started_at, finished_at, state, swaps_applied, swaps_three_way, exhausted, violations, audit_report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (run_id) DO UPDATE SET
			finished_at = EXCLUDED.finished_at,
			state = EXCLUDED.state,
			swaps_applied = EXCLUDED.swaps_applied,
			swaps_three_way = EXCLUDED.swaps_three_way,
			exhausted = EXCLUDED.exhausted,
			violations = EXCLUDED.violations,
			audit_report = EXCLUDED.audit_report`,
		run.RunID, run.StartedAt, run.FinishedAt, run.State,
		run.SwapsApplied, run.SwapsThreeWay, run.Exhausted, violationsJSON, auditJSON)
	if err != nil {
		return fmt.Errorf("failed to insert run record: %w", err)
	}

	return nil
}

// LatestRun returns the most recently finished run, or nil if the
// table is empty.
func (s *PostgresStore) LatestRun(ctx context.Context) (*RunRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT run_id, started_at, finished_at, state, swaps_applied, swaps_three_way, exhausted, violations, audit_report
		FROM optimizer_runs
		ORDER BY finished_at DESC
		LIMIT 1`)

	var run RunRecord
	var violationsJSON []byte
	var auditJSON []byte

	err := row.Scan(&run.RunID, &run.StartedAt, &run.FinishedAt, &run.State,
		&run.SwapsApplied, &run.SwapsThreeWay, &run.Exhausted, &violationsJSON, &auditJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	if err := json.Unmarshal(violationsJSON, &run.Violations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal violations: %w", err)
	}
	if len(auditJSON) > 0 {
		var report audit.Report
		if err := json.Unmarshal(auditJSON, &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit report: %w", err)
		}
		run.AuditReport = &report
	}

	return &run, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
