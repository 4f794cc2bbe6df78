package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the typed view of the process environment.
type Config struct {
	Env        string
	LogLevel   string
	HTTPAddr   string
	Version    string
	ContentDir string
	LiveReload bool
	AssetsDir  string
	Database   Database
	Mail       Mail
	RedisURL   string
	RateLimit  RateLimit
	Admin      Admin
}

type Database struct {
	Driver          string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Mail holds the notification gateway settings.
type Mail struct {
	Provider  string
	Timeout   time.Duration
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	ToEmail   string
	UseTLS    bool

	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	ResendAPIKey string
}

// SMTPConfigured reports whether the SMTP gateway has everything it needs to deliver.
func (m Mail) SMTPConfigured() bool {
	return m.Username != "" && m.Password != "" && m.ToEmail != ""
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type Admin struct {
	Username     string
	PasswordHash string
	JWTSecret    string
	SessionTTL   time.Duration
}

// AuthEnabled reports whether an admin login is configured. Admin views are
// not served without one.
func (a Admin) AuthEnabled() bool {
	return a.PasswordHash != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("SITE_VERSION", "dev")
	v.SetDefault("CONTENT_DIR", "data")
	v.SetDefault("CONTENT_LIVE_RELOAD", false)
	v.SetDefault("ASSETS_DIR", "assets")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", time.Minute)

	v.SetDefault("MAIL_PROVIDER", "smtp")
	v.SetDefault("MAIL_TIMEOUT", 10*time.Second)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Бюрократ - Форма обратной связи")
	v.SetDefault("SMTP_USE_TLS", true)

	v.SetDefault("CONTACT_RATE_LIMIT", 5)
	v.SetDefault("CONTACT_RATE_WINDOW", 10*time.Minute)

	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_SESSION_TTL", 12*time.Hour)
}

// Load reads an optional .env file and the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	fromEmail := v.GetString("SMTP_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = v.GetString("SMTP_USERNAME")
	}

	return &Config{
		Env:        v.GetString("APP_ENV"),
		LogLevel:   strings.ToLower(v.GetString("LOG_LEVEL")),
		HTTPAddr:   v.GetString("HTTP_ADDR"),
		Version:    v.GetString("SITE_VERSION"),
		ContentDir: v.GetString("CONTENT_DIR"),
		LiveReload: v.GetBool("CONTENT_LIVE_RELOAD"),
		AssetsDir:  v.GetString("ASSETS_DIR"),
		Database: Database{
			Driver:          v.GetString("DB_DRIVER"),
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		Mail: Mail{
			Provider:     strings.ToLower(v.GetString("MAIL_PROVIDER")),
			Timeout:      v.GetDuration("MAIL_TIMEOUT"),
			Host:         v.GetString("SMTP_HOST"),
			Port:         v.GetInt("SMTP_PORT"),
			Username:     v.GetString("SMTP_USERNAME"),
			Password:     v.GetString("SMTP_PASSWORD"),
			FromEmail:    fromEmail,
			FromName:     v.GetString("SMTP_FROM_NAME"),
			ToEmail:      v.GetString("SMTP_TO_EMAIL"),
			UseTLS:       v.GetBool("SMTP_USE_TLS"),
			AWSRegion:    v.GetString("AWS_REGION"),
			AWSAccessKey: v.GetString("AWS_ACCESS_KEY"),
			AWSSecretKey: v.GetString("AWS_SECRET_KEY"),
			ResendAPIKey: v.GetString("RESEND_API"),
		},
		RedisURL: v.GetString("REDIS_URL"),
		RateLimit: RateLimit{
			Requests: v.GetInt("CONTACT_RATE_LIMIT"),
			Window:   v.GetDuration("CONTACT_RATE_WINDOW"),
		},
		Admin: Admin{
			Username:     v.GetString("ADMIN_USERNAME"),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			JWTSecret:    v.GetString("JWT_SECRET"),
			SessionTTL:   v.GetDuration("ADMIN_SESSION_TTL"),
		},
	}
}

// Defaults returns the configuration an empty environment produces.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	return FromViper(v)
}
