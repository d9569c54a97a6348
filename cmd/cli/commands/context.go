package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/amoreau/repartition/internal/config"
	"github.com/amoreau/repartition/pkg/ingest"
	"github.com/amoreau/repartition/pkg/store"
)

// AppContext holds the application dependencies shared across all commands.
type AppContext struct {
	Cfg    *config.Config
	Source ingest.SnapshotSource
	Store  store.ResultStore
	Logger *zap.Logger
	Ctx    context.Context
}
