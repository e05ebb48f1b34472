package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	LogLevel          string
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	LoginRateLimit     string // ulule/limiter formatted rate, e.g. "5-M"

	// External OAuth Providers
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// Billing tax rates
	RetentionRate   decimal.Decimal
	VATRate         decimal.Decimal
	WithholdingRate decimal.Decimal

	// Cash request checks
	CashRequestTolerance        decimal.Decimal
	CashRequestStrictLineTotals bool
	MembershipCacheTTL          time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "bizadmin")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("TAX_RETENTION_RATE", "0.05")
	viper.SetDefault("TAX_VAT_RATE", "0.11")
	viper.SetDefault("TAX_WITHHOLDING_RATE", "0.0265")
	viper.SetDefault("CASH_REQUEST_TOLERANCE", "0.01")
	viper.SetDefault("CASH_REQUEST_STRICT_LINE_TOTALS", false)
	viper.SetDefault("MEMBERSHIP_CACHE_TTL", "30s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	if cfg.RetentionRate, err = decimalSetting("TAX_RETENTION_RATE"); err != nil {
		return nil, err
	}
	if cfg.VATRate, err = decimalSetting("TAX_VAT_RATE"); err != nil {
		return nil, err
	}
	if cfg.WithholdingRate, err = decimalSetting("TAX_WITHHOLDING_RATE"); err != nil {
		return nil, err
	}
	if cfg.CashRequestTolerance, err = decimalSetting("CASH_REQUEST_TOLERANCE"); err != nil {
		return nil, err
	}
	cfg.CashRequestStrictLineTotals = viper.GetBool("CASH_REQUEST_STRICT_LINE_TOTALS")

	ttlStr := viper.GetString("MEMBERSHIP_CACHE_TTL")
	cfg.MembershipCacheTTL, err = time.ParseDuration(ttlStr)
	if err != nil {
		cfg.MembershipCacheTTL = 30 * time.Second
		log.Printf("Warning: Invalid value for MEMBERSHIP_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, cfg.MembershipCacheTTL.String())
	}

	return cfg, nil
}

func decimalSetting(key string) (decimal.Decimal, error) {
	raw := viper.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid value for %s (%q): must not be negative", key, raw)
	}
	return d, nil
}

// SlogLevel maps LOG_LEVEL to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
