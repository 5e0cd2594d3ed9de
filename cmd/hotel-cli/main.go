package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/config"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/apiclient"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/logger"
	"github.com/hotelhub/hotel-booking/internal/infrastructure/observability"
)

var version = "1.0.0"

const shutdownTimeout = 5 * time.Second

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command tree, then flushes telemetry whether or not the
// command failed. Cobra skips post-run hooks after an error.
func execute(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	teardown()
	return err
}

var rootCmd = &cobra.Command{
	Use:   "hotel-cli",
	Short: "Hotel booking client",
	Long: `hotel-cli talks to the hotel, booking, payment, notification and user
services of a hotel booking deployment.

Examples:
  hotel-cli hotels search "Paris|France" --check-in 2024-07-01 --check-out 2024-07-04
  hotel-cli hotels search "Rome" --min-price 80 --max-rating 4.5 --page 2
  hotel-cli notifications list --user 7
  hotel-cli payments report -o json
  hotel-cli config show`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.AddCommand(hotelsCmd)
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.PersistentFlags().StringP("output", "o", formatTable, "Output format: table, json, yaml")
	rootCmd.PersistentFlags().String("config-file", "", "Configuration file (default: $"+config.DefaultFileEnv+" or "+config.DefaultFilePath+")")
}

// app is the state shared by every command of one invocation.
type app struct {
	cfg      *config.Config
	loader   *config.Loader
	log      zerolog.Logger
	services *apiclient.Services
	// flush exports buffered spans and metrics; set once telemetry starts.
	flush func(context.Context) error
}

var current app

func setup(cmd *cobra.Command, args []string) error {
	loadEnvFiles()

	if path, _ := cmd.Flags().GetString("config-file"); path != "" {
		if err := os.Setenv(config.DefaultFileEnv, path); err != nil {
			return fmt.Errorf("set config file: %w", err)
		}
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	current = app{cfg: cfg, loader: loader, log: logger.New(cfg)}
	return nil
}

// services connects the API clients on first use.
func services(ctx context.Context) (*apiclient.Services, error) {
	if current.services != nil {
		return current.services, nil
	}

	provider, err := observability.Init(ctx, observability.FromConfig(current.cfg, version))
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}
	current.flush = provider.Shutdown

	svc, err := apiclient.NewServices(current.cfg, provider, current.log)
	if err != nil {
		return nil, err
	}
	current.services = svc
	return svc, nil
}

func teardown() {
	if current.flush == nil {
		return
	}
	flush := current.flush
	current.flush = nil

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := flush(ctx); err != nil {
		current.log.Warn().Err(err).Msg("shutdown telemetry")
	}
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
