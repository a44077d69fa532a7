package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Ledger       LedgerConfig
	Scan         ScanStoreConfig
	Verification VerificationConfig
	Scanner      ScannerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"authentithief"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"authentithief"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// Backend selectors
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
)

type LedgerConfig struct {
	Backend         string `envconfig:"LEDGER_BACKEND" default:"memory"`
	RegistrationFee int64  `envconfig:"LEDGER_REGISTRATION_FEE" default:"1000"`
	DefaultBalance  int64  `envconfig:"LEDGER_DEFAULT_BALANCE" default:"1000000"`
	DefaultOwner    string `envconfig:"LEDGER_DEFAULT_OWNER" default:"0xa918ad6f552d4d91d44feed9be4d03a439fa04b1"`
}

type ScanStoreConfig struct {
	Backend       string `envconfig:"SCAN_STORE" default:"memory"`
	RedisURL      string `envconfig:"REDIS_URL" default:"localhost:6379"`
	RedisPrefix   string `envconfig:"REDIS_KEY_PREFIX" default:"authentithief:scan:"`
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"authentithief"`
}

type VerificationConfig struct {
	BatchSize         int           `envconfig:"VERIFY_BATCH_SIZE" default:"20"`
	UseBrand          bool          `envconfig:"VERIFY_USE_BRAND" default:"false"`
	RequireExpiration bool          `envconfig:"VERIFY_REQUIRE_EXPIRATION" default:"true"`
	KeyScheme         string        `envconfig:"VERIFY_KEY_SCHEME" default:"compound"`
	ScanBudget        time.Duration `envconfig:"VERIFY_SCAN_BUDGET" default:"5s"`
	BatchRetries      int           `envconfig:"VERIFY_BATCH_RETRIES" default:"1"`
	RetryBackoff      time.Duration `envconfig:"VERIFY_RETRY_BACKOFF" default:"100ms"`
}

type ScannerConfig struct {
	PollInterval   time.Duration `envconfig:"SCANNER_POLL_INTERVAL" default:"500ms"`
	MaxUploadBytes int64         `envconfig:"SCANNER_MAX_UPLOAD_BYTES" default:"8388608"`
	QRImageSize    int           `envconfig:"QR_IMAGE_SIZE" default:"256"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Ledger.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unsupported LEDGER_BACKEND %q", c.Ledger.Backend)
	}
	switch c.Scan.Backend {
	case BackendMemory, BackendPostgres, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("unsupported SCAN_STORE %q", c.Scan.Backend)
	}
	if c.Verification.BatchSize <= 0 {
		return fmt.Errorf("VERIFY_BATCH_SIZE must be positive, got %d", c.Verification.BatchSize)
	}
	if c.Verification.BatchRetries < 0 {
		return fmt.Errorf("VERIFY_BATCH_RETRIES must not be negative, got %d", c.Verification.BatchRetries)
	}
	if c.Scanner.PollInterval <= 0 {
		return fmt.Errorf("SCANNER_POLL_INTERVAL must be positive, got %s", c.Scanner.PollInterval)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Ledger: LedgerConfig{
			Backend:         BackendMemory,
			RegistrationFee: 1000,
			DefaultBalance:  1000000,
			DefaultOwner:    "0xa918ad6f552d4d91d44feed9be4d03a439fa04b1",
		},
		Scan: ScanStoreConfig{
			Backend: BackendMemory,
		},
		Verification: VerificationConfig{
			BatchSize:         20,
			UseBrand:          false,
			RequireExpiration: true,
			KeyScheme:         "compound",
			ScanBudget:        5 * time.Second,
			BatchRetries:      1,
		},
		Scanner: ScannerConfig{
			PollInterval:   10 * time.Millisecond,
			MaxUploadBytes: 1 << 20,
			QRImageSize:    256,
		},
	}
}
