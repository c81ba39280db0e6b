package commands

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/google/uuid"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/internal/repositories/account"
	"github.com/Ramsey-B/fern/internal/repositories/journal"
	"github.com/Ramsey-B/fern/internal/repositories/manualjournal"
	"github.com/Ramsey-B/fern/internal/repositories/processedjournal"
	"github.com/Ramsey-B/fern/internal/repositories/profitloss"
	"github.com/Ramsey-B/fern/internal/repositories/tenant"
	"github.com/Ramsey-B/fern/internal/repositories/trialbalance"
	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/etl"
	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/logging"
	"github.com/Ramsey-B/fern/pkg/sheets"
	"github.com/Ramsey-B/fern/pkg/tracing"
	"github.com/Ramsey-B/fern/pkg/xero"
)

// app holds one invocation's wired dependencies. Every subcommand builds the
// full stack: config, logger, database with migrations applied, Xero client
// and the pipeline, then tears it down when the run finishes.
type app struct {
	cfg      *config.Config
	logger   ectologger.Logger
	pipeline *etl.Pipeline
	closers  []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, flush, err := logging.New(cfg.PrettyLogs)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger}
	a.closers = append(a.closers, flush)

	if cfg.TracingEnabled {
		shutdown := tracing.Init(cfg.AppName)
		a.closers = append(a.closers, func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		})
	}

	db, err := database.Connect(ctx, logger, database.ConnectionConfig{
		Driver:          cfg.DatabaseDriver,
		Host:            cfg.DatabaseHost,
		Port:            cfg.DatabasePort,
		UserName:        cfg.DatabaseUserName,
		Password:        cfg.DatabasePassword,
		Name:            cfg.DatabaseName,
		SSLMode:         cfg.DatabaseSSLMode,
		MaxOpenConns:    cfg.DatabaseMaxOpenConns,
		MaxIdleConns:    cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: cfg.DatabaseConnMaxLifetime,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = db.Close() })

	driver, err := migratepg.WithInstance(db.Unsafe().DB, &migratepg.Config{})
	if err != nil {
		a.close()
		return nil, err
	}

	migrations := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
	})
	if err := migrations.Migrate(cfg.DatabaseName, driver); err != nil {
		a.close()
		return nil, err
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = time.Duration(cfg.XeroTimeoutSeconds) * time.Second
	httpClient := httpclient.NewClient(httpCfg, logger)

	tokenStore := xero.NewTokenStore(cfg.XeroTokensFile)
	authenticator := xero.NewAuthenticator(httpClient, tokenStore, cfg.XeroTokenURL, cfg.XeroClientID, cfg.XeroClientSecret, logger)
	client := xero.NewClient(httpClient, authenticator, cfg.XeroAccountingBase, cfg.TenantID, logger)

	var publisher sheets.Publisher
	if cfg.SheetsCredentialsFile != "" && cfg.SheetsSpreadsheetID != "" {
		gp, err := sheets.NewGoogleSheetsPublisher(ctx, cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID, logger)
		if err != nil {
			a.close()
			return nil, err
		}
		publisher = gp
	} else {
		logger.Info("Sheets credentials not configured, spreadsheet publishing disabled")
	}

	a.pipeline = etl.NewPipeline(
		uuid.NewString(),
		client,
		tenant.NewRepository(db, logger),
		trialbalance.NewRepository(db, logger),
		profitloss.NewRepository(db, logger),
		journal.NewRepository(db, logger),
		manualjournal.NewRepository(db, logger),
		account.NewRepository(db, logger),
		processedjournal.NewRepository(db, logger),
		publisher,
		logger,
	)

	return a, nil
}
