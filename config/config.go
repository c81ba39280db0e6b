package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName    string `env:"APP_NAME" env-default:"fern"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs bool   `env:"PRETTY_LOGS" env-default:"false"`

	TracingEnabled bool `env:"TRACING_ENABLED" env-default:"false"`

	// PostgreSQL
	DatabaseDriver              string        `env:"DB_DRIVER" env-default:"postgres"`
	DatabaseHost                string        `env:"DB_HOST" env-default:"localhost"`
	DatabasePort                string        `env:"DB_PORT" env-default:"5432"`
	DatabaseUserName            string        `env:"DB_USER_NAME" env-default:""`
	DatabasePassword            string        `env:"DB_PASSWORD" env-default:""`
	DatabaseName                string        `env:"DB_NAME" env-default:"fern"`
	DatabaseSSLMode             string        `env:"DB_SSL_MODE" env-default:"disable"`
	DatabaseMaxOpenConns        int           `env:"DB_MAX_OPEN_CONNS" env-default:"5"`
	DatabaseMaxIdleConns        int           `env:"DB_MAX_IDLE_CONNS" env-default:"2"`
	DatabaseConnMaxLifetime     time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"10s"`
	DatabaseMigrationFolderPath string        `env:"DB_MIGRATION_FOLDER_PATH" env-default:"db/pg"`
	DatabaseMigrationVersion    int           `env:"DB_MIGRATION_VERSION" env-default:"0"`
	DatabaseMigrationForce      int           `env:"DB_MIGRATION_FORCE" env-default:"0"`

	// Xero
	XeroClientID       string `env:"XERO_CLIENT_ID" env-default:"" validate:"required"`
	XeroClientSecret   string `env:"XERO_CLIENT_SECRET" env-default:"" validate:"required"`
	XeroTokenURL       string `env:"XERO_TOKEN_URL" env-default:"https://identity.xero.com/connect/token"`
	XeroAccountingBase string `env:"XERO_ACCOUNTING_BASE" env-default:"https://api.xero.com/api.xro/2.0"`
	XeroTokensFile     string `env:"XERO_TOKENS_FILE" env-default:"xero_tokens.json"`
	XeroTimeoutSeconds int    `env:"XERO_TIMEOUT_SECONDS" env-default:"60"`

	// Tenant scope. When empty, the tenant id recorded in the tokens file is used.
	TenantID string `env:"TENANT_ID" env-default:""`

	// Google Sheets publishing. Publishing is skipped when either value is empty.
	SheetsCredentialsFile string `env:"SHEETS_CREDENTIALS_FILE" env-default:""`
	SheetsSpreadsheetID   string `env:"SHEETS_SPREADSHEET_ID" env-default:""`

	// Processed expense journal view. Codes is a comma separated account code
	// allowlist; empty disables the code filter. Year narrows journal dates to
	// that calendar year; empty keeps all years.
	ExpenseAccountCodes string `env:"EXPENSE_ACCOUNT_CODES" env-default:""`
	ExpenseYear         string `env:"EXPENSE_YEAR" env-default:""`
}

// ExpenseAccountCodeList splits the configured account code allowlist.
func (c *Config) ExpenseAccountCodeList() []string {
	var codes []string
	for _, part := range strings.Split(c.ExpenseAccountCodes, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Load reads .env (when present), binds environment variables and validates
// that the Xero client credentials are configured. Credential errors are fatal
// at startup; there is no degraded mode.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
