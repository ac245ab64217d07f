package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Identity     IdentityConfig
	Payment      PaymentConfig
	OAuth2Google OAuth2GoogleConfig
}

type DatabaseConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	SSLMode        string
	MigrationsPath string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	BaseURL     string
	FrontendURL string
}

// IdentityConfig holds the external identity provider configuration
type IdentityConfig struct {
	APIURL string
	APIKey string
}

// PaymentConfig holds the payment processor credentials.
// All three credential fields are optional; when any is missing the
// payment client runs in mock mode.
type PaymentConfig struct {
	APIURL       string
	APIKey       string
	APISecret    string
	MerchantCode string
	WebhookToken string
}

type OAuth2GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           dbPort,
		User:           getEnv("DB_USER", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		Name:           getEnv("DB_NAME", "skellio-hr"),
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
		MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "migrations"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		BaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Identity = IdentityConfig{
		APIURL: getEnv("IDENTITY_API_URL", "https://identitytoolkit.googleapis.com/v1"),
		APIKey: getEnv("IDENTITY_API_KEY", ""),
	}

	config.Payment = PaymentConfig{
		APIURL:       getEnv("PAYMENT_API_URL", "https://api.sandbox.payoneer.com/v4"),
		APIKey:       getEnv("PAYMENT_API_KEY", ""),
		APISecret:    getEnv("PAYMENT_API_SECRET", ""),
		MerchantCode: getEnv("PAYMENT_MERCHANT_CODE", ""),
		WebhookToken: getEnv("PAYMENT_WEBHOOK_TOKEN", ""),
	}

	config.OAuth2Google = OAuth2GoogleConfig{
		ClientID:     getEnv("CLIENT_ID", ""),
		ClientSecret: getEnv("CLIENT_SECRET", ""),
		RedirectURL:  getEnv("REDIRECT_URL", ""),
		Scopes:       getEnvSlice("SCOPES"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Identity.APIKey == "" {
		return fmt.Errorf("IDENTITY_API_KEY is required")
	}
	if c.Payment.WebhookToken == "" {
		return fmt.Errorf("PAYMENT_WEBHOOK_TOKEN is required")
	}
	return nil
}

// PaymentConfigured reports whether live payment credentials are present.
// When false the payment client issues mock checkout sessions.
func (c *Config) PaymentConfigured() bool {
	return c.Payment.APIKey != "" && c.Payment.APISecret != "" && c.Payment.MerchantCode != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
