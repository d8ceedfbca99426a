package main

import (
	"fmt"
	"os"

	"watchbill-admin/cmd/wbctl/commands"
	"watchbill-admin/internal/admin"
	"watchbill-admin/internal/config"
	"watchbill-admin/internal/database"
	"watchbill-admin/internal/logger"
	"watchbill-admin/internal/repository"
	"watchbill-admin/internal/seed"
	"watchbill-admin/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	app      = &commands.AppContext{}
	db       *gorm.DB
	logLevel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wbctl",
		Short: "Watchbill roster administration",
		Long:  `Command-line access to the watch bill roster: seed data, export the roster CSV and acknowledge the June watch bill.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(commands.SeedCmd(app))
	rootCmd.AddCommand(commands.ExportCmd(app))
	rootCmd.AddCommand(commands.AckCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads configuration, opens the database and wires the services
func initApp() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	logger.Setup(level)

	db, err = database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	sailorAdmin, err := admin.NewSailorAdmin(cfg.RecentWatchDays, nil)
	if err != nil {
		return err
	}

	app.Sailors = service.NewSailorService(
		repository.NewSailorRepository(db),
		repository.NewQualRepository(db),
		repository.NewEventRepository(db),
		repository.NewGormTransactor(db),
		sailorAdmin,
		validator.New(),
	)
	app.Seeder = seed.NewLoader(db)
	return nil
}
