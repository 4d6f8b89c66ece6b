package main

import (
	"fmt"
	"strings"

	"github.com/financeforward/internal/config"
	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/logging"
	"github.com/financeforward/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type options struct {
	databasePath string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Maintenance tasks for the Finance Forward site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.databasePath, "database", "", "SQLite database path (default: DATABASE_PATH)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newInitContentCmd(opts),
		newPopulateExpertiseCmd(opts),
		newCreateAdminCmd(opts),
		newCheckDBCmd(opts),
	)
	return root
}

// resolvePath prefers the --database flag over the environment.
func (o *options) resolvePath() (string, error) {
	if path := strings.TrimSpace(o.databasePath); path != "" {
		return path, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DatabasePath, nil
}

func (o *options) open() (*gorm.DB, *zap.Logger, func(), error) {
	path, err := o.resolvePath()
	if err != nil {
		return nil, nil, nil, err
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Config{Level: level, Dev: true})
	if err != nil {
		return nil, nil, nil, err
	}

	gdb, err := db.Open(path, logger.Default.LogMode(logger.Silent))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}
	closeFn := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
		_ = log.Sync()
	}
	return gdb, log, closeFn, nil
}

func newInitContentCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init-content",
		Short: "Create every page content record with its default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, log, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			seeder := service.NewSeedService(gdb, service.NewContentService(gdb, log), log)
			results, err := seeder.InitContent(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, result := range results {
				if result.Created {
					fmt.Fprintf(out, "Created %s content with default values\n", result.Name)
				} else {
					fmt.Fprintf(out, "%s content already exists\n", result.Name)
				}
			}
			fmt.Fprintln(out, "Content initialization complete.")
			return nil
		},
	}
}

func newPopulateExpertiseCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "populate-expertise",
		Short: "Create or update the standard services and programs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			expertise, err := service.LoadExpertise(file)
			if err != nil {
				return err
			}

			gdb, log, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			seeder := service.NewSeedService(gdb, service.NewContentService(gdb, log), log)
			results, err := seeder.PopulateExpertise(cmd.Context(), expertise)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, result := range results {
				verb := "Updated"
				if result.Created {
					verb = "Created"
				}
				fmt.Fprintf(out, "%s %s: %s\n", verb, result.Kind, result.Name)
			}
			fmt.Fprintln(out, "Successfully populated expertise content.")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML file with services and programs (default: built-in list)")
	return cmd
}

func newCreateAdminCmd(opts *options) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, _, closeFn, err := opts.open()
			if err != nil {
				return err
			}
			defer closeFn()

			created, err := db.EnsureUser(gdb, username, password)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s\n", strings.TrimSpace(username))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Admin %s already exists\n", strings.TrimSpace(username))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Admin username")
	cmd.Flags().StringVar(&password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCheckDBCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Check database connectivity and report table sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.resolvePath()
			if err != nil {
				return err
			}

			report, err := db.Diagnose(cmd.Context(), path)
			if err != nil {
				return fmt.Errorf("database check failed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", report.Path)
			fmt.Fprintf(out, "SQLite version: %s\n", report.SQLiteVersion)
			fmt.Fprintf(out, "Query latency: %s\n", report.Latency)
			for _, table := range report.Tables {
				if table.Present {
					fmt.Fprintf(out, "  %-16s %d rows\n", table.Table, table.Rows)
				} else {
					fmt.Fprintf(out, "  %-16s missing\n", table.Table)
				}
			}
			return nil
		},
	}
}
