package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisURL string
	CartTTL  time.Duration

	JWTSecret     string
	BusinessPhone string

	AWSRegion   string
	SNSTopicARN string

	ReconciliationSchedule string
	OverdueReportSchedule  string

	CheckoutRatePerMinute int
	CheckoutBurst         int
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("CART_TTL: %w", err)
	}
	ratePerMinute, err := strconv.Atoi(getEnv("CHECKOUT_RATE_PER_MINUTE", "10"))
	if err != nil {
		return Config{}, fmt.Errorf("CHECKOUT_RATE_PER_MINUTE: %w", err)
	}
	burst, err := strconv.Atoi(getEnv("CHECKOUT_BURST", "5"))
	if err != nil {
		return Config{}, fmt.Errorf("CHECKOUT_BURST: %w", err)
	}

	return Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 getEnv("DB_NAME", "storefront"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		RedisURL:               getEnv("REDIS_URL", "redis://localhost:6379/0"),
		CartTTL:                cartTTL,
		JWTSecret:              os.Getenv("JWT_SECRET"),
		BusinessPhone:          os.Getenv("BUSINESS_WHATSAPP_PHONE"),
		AWSRegion:              getEnv("AWS_REGION", "us-east-1"),
		SNSTopicARN:            os.Getenv("SNS_TOPIC_ARN"),
		ReconciliationSchedule: getEnv("INVOICE_RECONCILIATION_SCHEDULE", "0 */5 * * * *"),
		OverdueReportSchedule:  getEnv("OVERDUE_REPORT_SCHEDULE", "0 0 8 * * *"),
		CheckoutRatePerMinute:  ratePerMinute,
		CheckoutBurst:          burst,
	}, nil
}

// DSN is the libpq keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func (c Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.BusinessPhone == "" {
		errs = append(errs, errors.New("BUSINESS_WHATSAPP_PHONE is required"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
