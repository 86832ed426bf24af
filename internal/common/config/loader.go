// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml on top
// and applies environment overrides (database.redis.address → DATABASE_REDIS_ADDRESS).
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return decode(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory to the first go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnvVars replaces ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			if expanded := os.ExpandEnv(strVal); expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

func overrideEmptyConfig(cfg *Config) {
	if cfg.Database.Postgres.User == "" {
		cfg.Database.Postgres.User = os.Getenv("DB_USER")
	}
	if cfg.Database.Postgres.Password == "" {
		cfg.Database.Postgres.Password = os.Getenv("DB_PASSWORD")
	}
	if cfg.Notifications.AWS.Region == "" {
		cfg.Notifications.AWS.Region = os.Getenv("AWS_REGION")
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "loan-assistant"
	}

	// Camunda defaults
	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}

	// Database defaults
	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	// Engine defaults
	e := &cfg.Engine
	if e.Language == "" {
		e.Language = "en"
	}
	if e.InterestRate == 0 {
		e.InterestRate = 10.5
	}
	if e.ReferencePrefix == "" {
		e.ReferencePrefix = "TATA"
	}
	if e.DelayFactor == 0 {
		e.DelayFactor = 1
	}
	if e.SalaryTolerance == 0 {
		e.SalaryTolerance = 0.10
	}
	if len(e.PhoneSuggestions) == 0 {
		e.PhoneSuggestions = []string{"9876543210", "9876543212", "9876543214"}
	}
	if len(e.AmountSuggestions) == 0 {
		e.AmountSuggestions = []int64{200000, 300000}
	}
	d := &e.Delays
	if d.Thinking == 0 {
		d.Thinking = 1000
	}
	if d.FollowUp == 0 {
		d.FollowUp = 2000
	}
	if d.CreditCheck == 0 {
		d.CreditCheck = 3000
	}
	if d.Sanction == 0 {
		d.Sanction = 3000
	}
	if d.DocumentVerify == 0 {
		d.DocumentVerify = 2500
	}
	if d.DocumentToCredit == 0 {
		d.DocumentToCredit = 2000
	}

	// Document defaults
	if cfg.Documents.MaxSizeBytes == 0 {
		cfg.Documents.MaxSizeBytes = 5 * 1024 * 1024
	}
	if len(cfg.Documents.AllowedTypes) == 0 {
		cfg.Documents.AllowedTypes = []string{"application/pdf", "image/jpeg", "image/png", "image/jpg"}
	}
	if cfg.Documents.ExtractorLatency.Max == 0 && cfg.Documents.ExtractorLatency.Min == 0 {
		cfg.Documents.ExtractorLatency.Min = 500
		cfg.Documents.ExtractorLatency.Max = 2000
	}

	// Collaborator defaults
	if cfg.Customers.Source == "" {
		cfg.Customers.Source = SourceMemory
	}
	if cfg.Session.Store == "" {
		cfg.Session.Store = SourceMemory
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 1800
	}
	if cfg.Session.LockTTL == 0 {
		cfg.Session.LockTTL = 30
	}
	if cfg.Session.LockWait == 0 {
		cfg.Session.LockWait = 5
	}
	if cfg.Session.JanitorSchedule == "" {
		cfg.Session.JanitorSchedule = "0 */5 * * * *"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.RegistryPath == "" {
		cfg.RegistryPath = "configs/activities.json"
	}

	// Worker defaults
	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = 5
		}
		if worker.Timeout == 0 {
			worker.Timeout = 30000
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = 3
		}
		cfg.Workers[key] = worker
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	switch cfg.Customers.Source {
	case SourceMemory:
	case SourcePostgres:
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required when customers.source is postgres")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required when customers.source is postgres")
		}
		if cfg.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required when customers.source is postgres")
		}
	default:
		return fmt.Errorf("customers.source must be %q or %q, got %q", SourceMemory, SourcePostgres, cfg.Customers.Source)
	}

	switch cfg.Session.Store {
	case SourceMemory, StoreRedis:
	default:
		return fmt.Errorf("session.store must be %q or %q, got %q", SourceMemory, StoreRedis, cfg.Session.Store)
	}

	if cfg.NeedsRedis() && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required for the redis session store or customer cache")
	}

	if cfg.Engine.InterestRate < 0 {
		return fmt.Errorf("engine.interest_rate must be positive")
	}
	if cfg.Engine.SalaryTolerance < 0 || cfg.Engine.SalaryTolerance >= 1 {
		return fmt.Errorf("engine.salary_tolerance must be in [0, 1)")
	}
	if cfg.Documents.ExtractorLatency.Max < cfg.Documents.ExtractorLatency.Min {
		return fmt.Errorf("documents.extractor_latency.max must not be below min")
	}

	n := cfg.Notifications
	if n.Email.Enabled && n.Email.FromEmail == "" {
		return fmt.Errorf("notifications.email.from_email is required when email is enabled")
	}
	if (n.Email.Enabled || n.SMS.Enabled) && n.AWS.Region == "" {
		return fmt.Errorf("notifications.aws.region (or AWS_REGION) is required when notifications are enabled")
	}

	return nil
}

// NeedsRedis reports whether any configured component uses Redis.
func (c *Config) NeedsRedis() bool {
	return c.Session.Store == StoreRedis || c.Customers.CacheTTL > 0
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetSeconds converts seconds from config to time.Duration
func GetSeconds(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// GetWorkerConfig retrieves worker-specific configuration with fallback to defaults
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}

	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30000,
		MaxRetries:    3,
	}
}

// IsWorkerEnabled checks if a specific worker is enabled
func IsWorkerEnabled(cfg *Config, workerName string) bool {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker.Enabled
	}
	return true
}
