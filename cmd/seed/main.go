// Command seed manages the database schema and reference data. It is run
// once against a fresh database, and safely re-run at any time.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/senvo/shipping-api/internal/infrastructure/config"
	"github.com/senvo/shipping-api/internal/infrastructure/db/postgres"
	"github.com/senvo/shipping-api/internal/seed"
	"github.com/senvo/shipping-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error().Err(err).Msg("seed command failed")
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Migrate the schema and load reference data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newMigrateCmd(cfg, log))
	cmd.AddCommand(newCountriesCmd(cfg, log))
	cmd.AddCommand(newCarriersCmd(cfg, log))
	return cmd
}

func newMigrateCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			if err := postgres.AutoMigrate(db); err != nil {
				return err
			}
			log.Info().Msg("schema migrated")
			return nil
		},
	}
}

func newCountriesCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Load countries, states, and cities from a JSON dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			return seed.NewSeeder(db, log).Countries(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "data/countries_states_cities.json", "path to the countries JSON dump")
	return cmd
}

func newCarriersCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "carriers",
		Short: "Insert the built-in carrier set",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cfg)
			if err != nil {
				return err
			}
			return seed.NewSeeder(db, log).Carriers(cmd.Context())
		},
	}
}

func connect(cfg *config.Config) (*gorm.DB, error) {
	return postgres.Connect(postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
}
