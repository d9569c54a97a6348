// Package store persists the outcome of an optimize run. The core
// never imports this package; callers in cmd/cli decide whether and
// where to persist.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/amoreau/repartition/pkg/audit"
	"github.com/amoreau/repartition/pkg/validate"
)

// RunRecord is one optimize invocation, identified by a run id that
// SaveRun generates when RunID is unset. The run id is not logged.
type RunRecord struct {
	RunID         uuid.UUID
	StartedAt     time.Time
	FinishedAt    time.Time
	State         string
	SwapsApplied  int
	SwapsThreeWay int
	Exhausted     bool
	Violations    []validate.Violation
	AuditReport   *audit.Report
}

// ResultStore is the narrow interface cmd/cli codes against;
// ResultStore never leaks pgx types to its callers.
type ResultStore interface {
	SaveRun(ctx context.Context, run RunRecord) error
	LatestRun(ctx context.Context) (*RunRecord, error)
	Close()
}
