package cmd

import (
	"fmt"
	"os"

	"github.com/VladimirZhdanov/university-records/internal/config"
	"github.com/VladimirZhdanov/university-records/internal/infrastructure/database"
	"github.com/VladimirZhdanov/university-records/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration management",
	Long:  "Manage database migrations for the university records system",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run pending migrations",
	Long:  "Execute all pending database migrations",
	Run:   runMigrateUp,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  "Display the status of all migrations",
	Run:   runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func connectForMigration() *gorm.DB {
	cfg := config.Get()

	db, err := database.NewConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.Username,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("Failed to connect to database: %v", err)
		os.Exit(1)
	}
	return db
}

func runMigrateUp(cmd *cobra.Command, args []string) {
	db := connectForMigration()

	if err := database.RunMigrations(db); err != nil {
		logger.Error("Migration failed: %v", err)
		os.Exit(1)
	}
}

func runMigrateStatus(cmd *cobra.Command, args []string) {
	db := connectForMigration()

	runner := database.NewMigrationRunner(db, "migrations")
	migrations, err := runner.GetMigrationStatus()
	if err != nil {
		logger.Error("Failed to get migration status: %v", err)
		os.Exit(1)
	}

	for _, m := range migrations {
		status := "pending"
		if m.AppliedAt != nil {
			status = "applied at " + m.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("%s  %-40s  %s\n", m.ID, m.Description, status)
	}
}
