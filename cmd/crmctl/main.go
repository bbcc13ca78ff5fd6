package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"crm_reports/internal/adapter/persistence"
	"crm_reports/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "crmctl",
		Short: "Operational commands for the CRM reports service",
		Long: `crmctl runs the quote expiration job and renders quote and contract
reports straight from the configured store, without going through the API.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CONFIG_FILE)")
	root.PersistentFlags().String("store", "", "store driver override (dynamodb, sqlite)")
	root.PersistentFlags().String("sqlite-dsn", "", "sqlite database path override")

	root.AddCommand(reconcileCmd())
	root.AddCommand(reportCmd())
	return root
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Printf("[crmctl] received interrupt signal, shutting down")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	if cfgFile == "" {
		cfgFile = os.Getenv("CONFIG_FILE")
	}
	if store, _ := cmd.Flags().GetString("store"); store != "" {
		if err := os.Setenv("STORE_DRIVER", store); err != nil {
			return err
		}
	}
	if dsn, _ := cmd.Flags().GetString("sqlite-dsn"); dsn != "" {
		if err := os.Setenv("SQLITE_DSN", dsn); err != nil {
			return err
		}
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// openStore opens the configured store. Callers must Close it.
func openStore(ctx context.Context) (*persistence.Repositories, error) {
	repos, err := persistence.NewRepositories(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return repos, nil
}

func closeStore(repos *persistence.Repositories) {
	if err := repos.Close(); err != nil {
		log.Printf("[crmctl] failed to close storage err=%v", err)
	}
}
