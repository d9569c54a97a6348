package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amoreau/repartition/cmd/cli/commands"
	"github.com/amoreau/repartition/internal/config"
	"github.com/amoreau/repartition/internal/logging"
	"github.com/amoreau/repartition/pkg/ingest"
	"github.com/amoreau/repartition/pkg/store"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "repartition",
		Short: "Repartition CLI - assigns students to destination classes",
		Long:  `A CLI tool for loading a student cohort, running the placement optimizer, and auditing the result.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Store != nil {
					app.Store.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.OptimizeCmd(app))
	rootCmd.AddCommand(commands.AuditCmd(app))
	rootCmd.AddCommand(commands.ListStudentsCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp populates app's fields in place; commands were handed the
// same pointer at startup and read through it once RunE fires, which
// PersistentPreRunE guarantees happens after this returns.
func initApp() error {
	var err error
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger.Info("starting application", zap.String("environment", env))

	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load oauth client config: %w", err)
	}

	app.Source, err = ingest.NewSheetsSource(app.Ctx, app.Cfg, oauthCfg, env)
	if err != nil {
		return fmt.Errorf("failed to initialize sheets source: %w", err)
	}

	app.Store, err = store.NewPostgresStore(app.Ctx, app.Cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to initialize result store: %w", err)
	}

	return nil
}
