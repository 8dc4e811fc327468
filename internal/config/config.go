package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "PROFUTUR"

type AppConfig struct {
	API        *APIConfig        `mapstructure:"api"`
	Gin        *GinConfig        `mapstructure:"gin"`
	Database   *DatabaseConfig   `mapstructure:"database"`
	Ledger     *LedgerConfig     `mapstructure:"ledger"`
	Enrollment *EnrollmentConfig `mapstructure:"enrollment"`
	Payments   *PaymentsConfig   `mapstructure:"payments"`
	Webhooks   *WebhooksConfig   `mapstructure:"webhooks"`
	SendGrid   *SendGridConfig   `mapstructure:"sendgrid"`
	Reconciler *ReconcilerConfig `mapstructure:"reconciler"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	BaseURL            string        `mapstructure:"base_url"`
	PublicBaseURL      string        `mapstructure:"public_base_url"`
	Port               string        `mapstructure:"port"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTExpiration      time.Duration `mapstructure:"jwt_expiration"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, mysql or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DB              string        `mapstructure:"db"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

type LedgerConfig struct {
	Network            string        `mapstructure:"network"` // testnet, mainnet, previewnet or local
	OperatorAccountID  string        `mapstructure:"operator_account_id"`
	OperatorPrivateKey string        `mapstructure:"operator_private_key"`
	TreasuryAccountID  string        `mapstructure:"treasury_account_id"`
	TreasuryPrivateKey string        `mapstructure:"treasury_private_key"`
	MirrorNodeURL      string        `mapstructure:"mirror_node_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

type EnrollmentConfig struct {
	EnforceCapacity bool `mapstructure:"enforce_capacity"`
}

type PaymentsConfig struct {
	Currency      string        `mapstructure:"currency"`
	PendingExpiry time.Duration `mapstructure:"pending_expiry"`
}

type WebhooksConfig struct {
	Secret string `mapstructure:"secret"`
}

type SendGridConfig struct {
	APIKey    string `mapstructure:"api_key"`
	FromName  string `mapstructure:"from_name"`
	FromEmail string `mapstructure:"from_email"`
}

type ReconcilerConfig struct {
	Schedule string `mapstructure:"schedule"` // cron spec; empty disables the job
	Location string `mapstructure:"location"`
}

// Load reads the yaml file at path and applies PROFUTUR_* environment overrides.
func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// LoadAndWatch behaves like Load and then calls onChange with the re-decoded
// config every time the file changes on disk.
func LoadAndWatch(path string, onChange func(conf *AppConfig, e fsnotify.Event)) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(reloader(v, onChange))
	v.WatchConfig()

	return conf, nil
}

// reloader re-decodes the config on every write. An edit that does not decode
// or validate is logged and the running config is kept.
func reloader(v *viper.Viper, onChange func(conf *AppConfig, e fsnotify.Event)) func(e fsnotify.Event) {
	return func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}

		updated, err := decode(v)
		if err != nil {
			zap.L().Warn("ignoring config change",
				zap.String("file", e.Name),
				zap.Error(err),
			)
			return
		}

		onChange(updated, e)
	}
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Names used by the Hedera tooling.
	_ = v.BindEnv("ledger.network", "HEDERA_NETWORK")
	_ = v.BindEnv("ledger.operator_account_id", "HEDERA_ACCOUNT_ID")
	_ = v.BindEnv("ledger.operator_private_key", "HEDERA_PRIVATE_KEY")
	_ = v.BindEnv("ledger.treasury_account_id", "HEDERA_TREASURY_ACCOUNT")
	_ = v.BindEnv("ledger.treasury_private_key", "HEDERA_TREASURY_PRIVATE_KEY")
	_ = v.BindEnv("sendgrid.api_key", "SENDGRID_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.jwt_expiration", 7*24*time.Hour)
	v.SetDefault("gin.mode", "release")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("ledger.network", "testnet")
	v.SetDefault("ledger.timeout", 30*time.Second)
	v.SetDefault("enrollment.enforce_capacity", false)
	v.SetDefault("payments.currency", "USD")
	v.SetDefault("payments.pending_expiry", time.Duration(0))
	v.SetDefault("webhooks.secret", "")
	v.SetDefault("sendgrid.api_key", "")
	v.SetDefault("sendgrid.from_name", "PROFUTUR")
	v.SetDefault("sendgrid.from_email", "noreply@profutur.example.com")
	v.SetDefault("reconciler.schedule", "")
	v.SetDefault("reconciler.location", "UTC")
}

func decode(v *viper.Viper) (*AppConfig, error) {
	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return &conf, nil
}

func (c *AppConfig) Validate() error {
	err := validation.ValidateStruct(
		c,
		validation.Field(&c.API, validation.Required),
		validation.Field(&c.Gin, validation.Required),
		validation.Field(&c.Database, validation.Required),
		validation.Field(&c.Ledger, validation.Required),
	)
	if err != nil {
		return err
	}

	if err = c.API.Validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return validation.ValidateStruct(
		c.Database,
		validation.Field(&c.Database.Driver, validation.Required, validation.In("postgres", "mysql", "sqlite")),
	)
}

func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.JWTSigningKey, validation.Required, validation.Length(16, 0)),
	)
}
