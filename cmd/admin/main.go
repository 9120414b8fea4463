package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/cmd"
	"storefront/internal/adapters/out/events"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/ports"

	"github.com/spf13/cobra"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "storefront-admin",
	Short: "Operate on storefront orders, invoices and the catalog",
	Long: `storefront-admin runs back-office operations against the storefront database.

It reads the same environment (or .env file) as the API server.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newSeedCmd(),
		newOrdersCmd(),
		newAdvanceCmd(),
		newSetStatusCmd(),
		newGenerateInvoicesCmd(),
		newInvoicesCmd(),
		newSettleCmd(),
		newReconcileCmd(),
	)
}

// bootstrap connects to the database and builds the composition root. Cart
// and chat handoff adapters are not needed by any admin command.
func bootstrap(ctx context.Context) (*cmd.CompositionRoot, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	configs, err := cmd.LoadConfig()
	if err != nil {
		return nil, err
	}

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return nil, err
	}

	var publisher ports.EventPublisher = events.NewLogPublisher(logger)
	if configs.SNSTopicARN != "" {
		if publisher, err = events.NewSNSPublisherFromEnv(ctx, configs.AWSRegion, configs.SNSTopicARN); err != nil {
			return nil, err
		}
	}

	return cmd.NewCompositionRoot(configs, cmd.Dependencies{
		DB:        gormDB,
		Publisher: publisher,
		Logger:    logger,
	}), nil
}
