package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Log        LogConfig
	CORS       CORSConfig
	Pipeline   PipelineConfig
	Classifier ClassifierConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the statement archive.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AccountMapping associates a counterparty identifier substring with a
// ledger account name. Order is significant: first match wins.
type AccountMapping struct {
	Identifier string
	Account    string
}

// PipelineConfig holds the configuration tables for the statement pipeline.
// All values are read once at startup and passed into the pipeline as
// immutable configuration.
type PipelineConfig struct {
	ParseTimeoutSecs int `mapstructure:"parse_timeout_secs"`
	SamplePages      int `mapstructure:"sample_pages"`
	SampleMaxBytes   int `mapstructure:"sample_max_bytes"`

	OwnAccounts []string `mapstructure:"own_accounts"`
	AccountMap  string   `mapstructure:"account_map"`

	BankAccount            string `mapstructure:"bank_account"`
	DefaultIncomeAccount   string `mapstructure:"default_income_account"`
	DefaultExpenseAccount  string `mapstructure:"default_expense_account"`
	DefaultTransferAccount string `mapstructure:"default_transfer_account"`
	SuspenseAccount        string `mapstructure:"suspense_account"`

	IncomeKeywords  []string `mapstructure:"income_keywords"`
	ExpenseKeywords []string `mapstructure:"expense_keywords"`
}

// ParseTimeout returns the parse stage timeout as a duration.
func (p *PipelineConfig) ParseTimeout() time.Duration {
	return time.Duration(p.ParseTimeoutSecs) * time.Second
}

// AccountMappings parses the ordered "identifier:account" pairs from the
// comma-separated account_map setting, preserving declared order.
func (p *PipelineConfig) AccountMappings() []AccountMapping {
	var out []AccountMapping
	for _, pair := range strings.Split(p.AccountMap, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		ident, account, ok := strings.Cut(pair, ":")
		if !ok {
			continue
		}
		out = append(out, AccountMapping{
			Identifier: strings.TrimSpace(ident),
			Account:    strings.TrimSpace(account),
		})
	}
	return out
}

// ClassifierConfig holds settings for the external AI ambiguity classifier.
type ClassifierConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxEntries  int    `mapstructure:"max_entries"`
}

// Timeout returns the classifier call timeout as a duration.
func (c *ClassifierConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// Load reads configuration from environment variables with the AUTOLEDGER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("AUTOLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "autoledger")
	v.SetDefault("db.password", "autoledger_secret")
	v.SetDefault("db.name", "autoledger_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Pipeline defaults
	v.SetDefault("pipeline.parse_timeout_secs", 30)
	v.SetDefault("pipeline.sample_pages", 3)
	v.SetDefault("pipeline.sample_max_bytes", 5000)
	v.SetDefault("pipeline.own_accounts", "YANAL,9542900459,4897732162091,YESB,PAYTM,SELF ACCOUNT,CURRENT ACCOUNT,SBI")
	v.SetDefault("pipeline.account_map", "PAYTM:Wallet Expense,SHACH:Client Income,YANAL:Internal Transfer,TGSPD:Vendor,UPI:UPI Transfer Account")
	v.SetDefault("pipeline.bank_account", "Current Account")
	v.SetDefault("pipeline.default_income_account", "Income")
	v.SetDefault("pipeline.default_expense_account", "Expenses")
	v.SetDefault("pipeline.default_transfer_account", "Transfer Account")
	v.SetDefault("pipeline.suspense_account", "Suspense")
	v.SetDefault("pipeline.income_keywords", "income,client,revenue,received")
	v.SetDefault("pipeline.expense_keywords", "expense,vendor,purchase,wallet")

	// Classifier defaults
	v.SetDefault("classifier.provider", "noop")
	v.SetDefault("classifier.api_key", "")
	v.SetDefault("classifier.model", "sonar-pro")
	v.SetDefault("classifier.timeout_secs", 15)
	v.SetDefault("classifier.max_entries", 10)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "AUTOLEDGER_SERVER_PORT",
		"server.read_timeout":               "AUTOLEDGER_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "AUTOLEDGER_SERVER_WRITE_TIMEOUT",
		"server.environment":                "AUTOLEDGER_SERVER_ENVIRONMENT",
		"db.host":                           "AUTOLEDGER_DB_HOST",
		"db.port":                           "AUTOLEDGER_DB_PORT",
		"db.user":                           "AUTOLEDGER_DB_USER",
		"db.password":                       "AUTOLEDGER_DB_PASSWORD",
		"db.name":                           "AUTOLEDGER_DB_NAME",
		"db.sslmode":                        "AUTOLEDGER_DB_SSLMODE",
		"db.max_open":                       "AUTOLEDGER_DB_MAX_OPEN",
		"db.max_idle":                       "AUTOLEDGER_DB_MAX_IDLE",
		"log.level":                         "AUTOLEDGER_LOG_LEVEL",
		"log.format":                        "AUTOLEDGER_LOG_FORMAT",
		"cors.allowed_origins":              "AUTOLEDGER_CORS_ALLOWED_ORIGINS",
		"pipeline.parse_timeout_secs":       "AUTOLEDGER_PIPELINE_PARSE_TIMEOUT_SECS",
		"pipeline.sample_pages":             "AUTOLEDGER_PIPELINE_SAMPLE_PAGES",
		"pipeline.sample_max_bytes":         "AUTOLEDGER_PIPELINE_SAMPLE_MAX_BYTES",
		"pipeline.own_accounts":             "AUTOLEDGER_PIPELINE_OWN_ACCOUNTS",
		"pipeline.account_map":              "AUTOLEDGER_PIPELINE_ACCOUNT_MAP",
		"pipeline.bank_account":             "AUTOLEDGER_PIPELINE_BANK_ACCOUNT",
		"pipeline.default_income_account":   "AUTOLEDGER_PIPELINE_DEFAULT_INCOME_ACCOUNT",
		"pipeline.default_expense_account":  "AUTOLEDGER_PIPELINE_DEFAULT_EXPENSE_ACCOUNT",
		"pipeline.default_transfer_account": "AUTOLEDGER_PIPELINE_DEFAULT_TRANSFER_ACCOUNT",
		"pipeline.suspense_account":         "AUTOLEDGER_PIPELINE_SUSPENSE_ACCOUNT",
		"pipeline.income_keywords":          "AUTOLEDGER_PIPELINE_INCOME_KEYWORDS",
		"pipeline.expense_keywords":         "AUTOLEDGER_PIPELINE_EXPENSE_KEYWORDS",
		"classifier.provider":               "AUTOLEDGER_CLASSIFIER_PROVIDER",
		"classifier.api_key":                "AUTOLEDGER_CLASSIFIER_API_KEY",
		"classifier.model":                  "AUTOLEDGER_CLASSIFIER_MODEL",
		"classifier.timeout_secs":           "AUTOLEDGER_CLASSIFIER_TIMEOUT_SECS",
		"classifier.max_entries":            "AUTOLEDGER_CLASSIFIER_MAX_ENTRIES",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Comma-separated list settings arrive as single strings from env.
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))
	cfg.Pipeline.OwnAccounts = splitList(v.GetString("pipeline.own_accounts"))
	cfg.Pipeline.IncomeKeywords = splitList(v.GetString("pipeline.income_keywords"))
	cfg.Pipeline.ExpenseKeywords = splitList(v.GetString("pipeline.expense_keywords"))

	if cfg.Server.Environment == "production" && cfg.Classifier.Provider == "sonar" && cfg.Classifier.APIKey == "" {
		fmt.Fprintln(os.Stderr, "warning: sonar classifier selected without an API key; ambiguous entries will get placeholder suggestions")
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
