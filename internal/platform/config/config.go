package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/bizos_calc/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	RunMigrations  bool
	MigrationsPath string
	JWTSecret      string
	JWTIssuer      string

	// RateLimit uses the ulule formatted notation, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	// ReportCacheTTL bounds how long the in-memory store keeps generated tax reports. Zero keeps them
	// forever. Portfolio history is never expired.
	ReportCacheTTL time.Duration

	TaxYear                  int
	TaxJurisdiction          string
	TaxCapitalLossCap        domain.Money
	TaxLongTermRate          decimal.Decimal
	TaxShortTermRate         decimal.Decimal
	TaxQualifiedDividendRate decimal.Decimal
	TaxOrdinaryIncomeRate    decimal.Decimal
	TaxLongTermDays          int
	TaxWashSaleDays          int

	PricingTaxRounding domain.RoundingMode
	EnableRiskScoring  bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	usDefaults := domain.DefaultUSTaxYearConfig(time.Now().Year())

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("REPORT_CACHE_TTL", "0s")
	viper.SetDefault("TAX_YEAR", usDefaults.TaxYear)
	viper.SetDefault("TAX_JURISDICTION", usDefaults.Jurisdiction)
	viper.SetDefault("TAX_CAPITAL_LOSS_CAP", usDefaults.CapitalLossDeductionCap.String())
	viper.SetDefault("TAX_LONG_TERM_RATE", usDefaults.LongTermRate.String())
	viper.SetDefault("TAX_SHORT_TERM_RATE", usDefaults.ShortTermRate.String())
	viper.SetDefault("TAX_QUALIFIED_DIVIDEND_RATE", usDefaults.QualifiedDividendRate.String())
	viper.SetDefault("TAX_ORDINARY_INCOME_RATE", usDefaults.OrdinaryIncomeRate.String())
	viper.SetDefault("TAX_LONG_TERM_DAYS", usDefaults.LongTermThresholdDays)
	viper.SetDefault("TAX_WASH_SALE_DAYS", usDefaults.WashSaleWindowDays)
	viper.SetDefault("PRICING_TAX_ROUNDING", string(domain.RoundHalfUp))
	viper.SetDefault("ENABLE_RISK_SCORING", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using in-memory storage.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	ttlStr := viper.GetString("REPORT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl < 0 {
		log.Printf("Warning: Invalid value for REPORT_CACHE_TTL ('%s'). Keeping entries without expiry.\n", ttlStr)
		ttl = 0
	}
	cfg.ReportCacheTTL = ttl

	cfg.TaxYear = viper.GetInt("TAX_YEAR")
	cfg.TaxJurisdiction = viper.GetString("TAX_JURISDICTION")
	if cfg.TaxCapitalLossCap, err = domain.ParseMoney(viper.GetString("TAX_CAPITAL_LOSS_CAP")); err != nil {
		return nil, fmt.Errorf("invalid TAX_CAPITAL_LOSS_CAP: %w", err)
	}
	rates := []struct {
		key string
		dst *decimal.Decimal
	}{
		{"TAX_LONG_TERM_RATE", &cfg.TaxLongTermRate},
		{"TAX_SHORT_TERM_RATE", &cfg.TaxShortTermRate},
		{"TAX_QUALIFIED_DIVIDEND_RATE", &cfg.TaxQualifiedDividendRate},
		{"TAX_ORDINARY_INCOME_RATE", &cfg.TaxOrdinaryIncomeRate},
	}
	for _, r := range rates {
		if *r.dst, err = parseRate(viper.GetString(r.key)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", r.key, err)
		}
	}
	cfg.TaxLongTermDays = viper.GetInt("TAX_LONG_TERM_DAYS")
	cfg.TaxWashSaleDays = viper.GetInt("TAX_WASH_SALE_DAYS")
	if cfg.TaxLongTermDays <= 0 || cfg.TaxWashSaleDays < 0 {
		return nil, fmt.Errorf("TAX_LONG_TERM_DAYS must be positive and TAX_WASH_SALE_DAYS must not be negative")
	}

	cfg.PricingTaxRounding = domain.RoundingMode(strings.ToLower(viper.GetString("PRICING_TAX_ROUNDING")))
	if !cfg.PricingTaxRounding.IsValid() {
		return nil, fmt.Errorf("invalid PRICING_TAX_ROUNDING %q: use %s or %s", cfg.PricingTaxRounding, domain.RoundHalfUp, domain.RoundHalfEven)
	}
	cfg.EnableRiskScoring = viper.GetBool("ENABLE_RISK_SCORING")

	return cfg, nil
}

// TaxYearConfig builds the tax constants for the configured year.
func (c *Config) TaxYearConfig() domain.TaxYearConfig {
	return domain.TaxYearConfig{
		TaxYear:                 c.TaxYear,
		Jurisdiction:            c.TaxJurisdiction,
		CapitalLossDeductionCap: c.TaxCapitalLossCap,
		LongTermRate:            c.TaxLongTermRate,
		ShortTermRate:           c.TaxShortTermRate,
		QualifiedDividendRate:   c.TaxQualifiedDividendRate,
		OrdinaryIncomeRate:      c.TaxOrdinaryIncomeRate,
		LongTermThresholdDays:   c.TaxLongTermDays,
		WashSaleWindowDays:      c.TaxWashSaleDays,
	}
}

func parseRate(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("rate %s must be between 0 and 1", d.String())
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
