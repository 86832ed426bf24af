// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Engine        EngineConfig            `mapstructure:"engine"`
	Documents     DocumentsConfig         `mapstructure:"documents"`
	Customers     CustomersConfig         `mapstructure:"customers"`
	Session       SessionConfig           `mapstructure:"session"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
	Logging       LoggingConfig           `mapstructure:"logging"`
	Server        ServerConfig            `mapstructure:"server"`
	RegistryPath  string                  `mapstructure:"registry_path"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Conversation Configuration ---

// EngineConfig tunes the conversation engine.
type EngineConfig struct {
	Language            string       `mapstructure:"language"`
	InterestRate        float64      `mapstructure:"interest_rate"`
	ReferencePrefix     string       `mapstructure:"reference_prefix"`
	EnforceTenureBounds bool         `mapstructure:"enforce_tenure_bounds"`
	RepromptOnConfirm   bool         `mapstructure:"reprompt_on_confirm"`
	ReconcileSalary     bool         `mapstructure:"reconcile_salary"`
	SalaryTolerance     float64      `mapstructure:"salary_tolerance"`
	PhoneSuggestions    []string     `mapstructure:"phone_suggestions"`
	AmountSuggestions   []int64      `mapstructure:"amount_suggestions"`
	SimulateLatency     bool         `mapstructure:"simulate_latency"`
	DelayFactor         float64      `mapstructure:"delay_factor"`
	Delays              DelaysConfig `mapstructure:"delays"`
}

// DelaysConfig holds simulated latencies in milliseconds.
type DelaysConfig struct {
	Thinking         int `mapstructure:"thinking"`
	FollowUp         int `mapstructure:"follow_up"`
	CreditCheck      int `mapstructure:"credit_check"`
	Sanction         int `mapstructure:"sanction"`
	DocumentVerify   int `mapstructure:"document_verify"`
	DocumentToCredit int `mapstructure:"document_to_credit"`
}

type DocumentsConfig struct {
	MaxSizeBytes     int64        `mapstructure:"max_size_bytes"`
	AllowedTypes     []string     `mapstructure:"allowed_types"`
	ExtractorLatency LatencyRange `mapstructure:"extractor_latency"`
}

// LatencyRange bounds a simulated delay, in milliseconds.
type LatencyRange struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
	StoreRedis     = "redis"
)

type CustomersConfig struct {
	Source   string `mapstructure:"source"`    // memory | postgres
	CacheTTL int    `mapstructure:"cache_ttl"` // seconds, 0 disables the redis cache
	Migrate  bool   `mapstructure:"migrate"`
	SeedDemo bool   `mapstructure:"seed_demo"`
}

type SessionConfig struct {
	Store           string `mapstructure:"store"` // memory | redis
	TTL             int    `mapstructure:"ttl"`   // seconds
	LockTTL         int    `mapstructure:"lock_ttl"`
	LockWait        int    `mapstructure:"lock_wait"`
	JanitorSchedule string `mapstructure:"janitor_schedule"`
}

// NotificationConfig holds settings for the notify-sanction worker.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}
