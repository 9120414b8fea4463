package cmd_test

import (
	"testing"
	"time"

	"storefront/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"HTTP_PORT", "DB_HOST", "CART_TTL", "INVOICE_RECONCILIATION_SCHEDULE"} {
		t.Setenv(key, "")
	}

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 7*24*time.Hour, cfg.CartTTL)
	assert.Equal(t, "0 */5 * * * *", cfg.ReconciliationSchedule)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CART_TTL", "2h")
	t.Setenv("CHECKOUT_BURST", "12")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.CartTTL)
	assert.Equal(t, 12, cfg.CheckoutBurst)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CART_TTL", "a week")

	_, err := cmd.LoadConfig()

	assert.ErrorContains(t, err, "CART_TTL")
}

func TestConfig_Validate(t *testing.T) {
	err := cmd.Config{}.Validate()

	assert.ErrorContains(t, err, "JWT_SECRET")
	assert.ErrorContains(t, err, "BUSINESS_WHATSAPP_PHONE")
	assert.NoError(t, cmd.Config{JWTSecret: "s", BusinessPhone: "+254700000000"}.Validate())
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "shop", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shop sslmode=disable", cfg.DSN())
}
