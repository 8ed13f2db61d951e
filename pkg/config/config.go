package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "RM8"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	FeatureFlags FeatureFlagsConfig
	Reminders    RemindersConfig
	Dispatch     DispatchConfig
	Email        EmailConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Reminders.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RM8_APP_ENV" default:"dev"`
	Port         string `envconfig:"RM8_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RM8_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RM8_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind        string   `envconfig:"RM8_SERVICE_KIND" default:"api"`
	CORSOrigins []string `envconfig:"RM8_SERVICE_CORS_ORIGINS"`
}

type DBConfig struct {
	Driver string `envconfig:"RM8_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"RM8_DB_DSN" default:"rm8dash.db"`

	MaxOpenConns    int           `envconfig:"RM8_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"RM8_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"RM8_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RM8_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RM8_FEATURE_AUTO_MIGRATE" default:"true"`
}

// RemindersConfig carries the reminder cadences and the product policy
// constants. The window/threshold values come from the product requirement
// and are overridable, not derived.
type RemindersConfig struct {
	PrimaryInterval   time.Duration `envconfig:"RM8_REMINDERS_PRIMARY_INTERVAL" default:"15m"`
	SecondaryInterval time.Duration `envconfig:"RM8_REMINDERS_SECONDARY_INTERVAL" default:"30m"`
	PrimaryDelay      time.Duration `envconfig:"RM8_REMINDERS_PRIMARY_DELAY" default:"15s"`
	SecondaryDelay    time.Duration `envconfig:"RM8_REMINDERS_SECONDARY_DELAY" default:"45s"`

	MorningWindow string `envconfig:"RM8_REMINDERS_MORNING_WINDOW" default:"07:30"`
	MiddayWindow  string `envconfig:"RM8_REMINDERS_MIDDAY_WINDOW" default:"12:00"`
	EveningWindow string `envconfig:"RM8_REMINDERS_EVENING_WINDOW" default:"20:00"`

	ExpenseWarnThreshold  decimal.Decimal `envconfig:"RM8_REMINDERS_EXPENSE_WARN_THRESHOLD" default:"800"`
	ExpenseAlertThreshold decimal.Decimal `envconfig:"RM8_REMINDERS_EXPENSE_ALERT_THRESHOLD" default:"1000"`
	SettleUpThreshold     decimal.Decimal `envconfig:"RM8_REMINDERS_SETTLE_UP_THRESHOLD" default:"200"`

	HouseMeetingWeekday string `envconfig:"RM8_REMINDERS_HOUSE_MEETING_WEEKDAY" default:"Sunday"`
	CheckinWeekday      string `envconfig:"RM8_REMINDERS_CHECKIN_WEEKDAY" default:"Sunday"`
}

func (r RemindersConfig) validate() error {
	for _, window := range []string{r.MorningWindow, r.MiddayWindow, r.EveningWindow} {
		if _, err := time.Parse("15:04", window); err != nil {
			return fmt.Errorf("invalid reminder window %q: %w", window, err)
		}
	}
	if _, err := ParseWeekday(r.HouseMeetingWeekday); err != nil {
		return err
	}
	if _, err := ParseWeekday(r.CheckinWeekday); err != nil {
		return err
	}
	return nil
}

type DispatchConfig struct {
	AutoExpire time.Duration `envconfig:"RM8_DISPATCH_AUTO_EXPIRE" default:"10s"`
}

type EmailConfig struct {
	From string `envconfig:"RM8_EMAIL_FROM" default:"reminders@rm8dash.local"`
	To   string `envconfig:"RM8_EMAIL_TO"`
}

// ParseWeekday maps an English weekday name onto time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", name)
}
