package migration

import (
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"path"
	"strconv"
)

const defaultSourceURL = "file://migrations"

func newMigrate(sourceURL string, dbURL string) *migrate.Migrate {
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the migrate command with up, down and force sub commands, dbURL in the form mysql://dsn
func MigrateCommand(dbURL string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newMigrate(defaultSourceURL, dbURL)
			defer func() { _, _ = m.Close() }()
			return ignoreNoChange(m.Up())
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "roll back migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid steps: %s", args[0])
				}
				steps = n
			}

			m := newMigrate(defaultSourceURL, dbURL)
			defer func() { _, _ = m.Close() }()
			return ignoreNoChange(m.Steps(-steps))
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "set the migration version without running migrations, clears the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version: %s", args[0])
			}

			m := newMigrate(defaultSourceURL, dbURL)
			defer func() { _, _ = m.Close() }()
			return m.Force(version)
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, forceCmd)
	return rootCmd
}

// MigrateUpForTesting applies all migrations in rootDir/migrations, panics on error
func MigrateUpForTesting(rootDir string, dbURL string) {
	m := newMigrate("file://"+path.Join(rootDir, "migrations"), dbURL)
	defer func() { _, _ = m.Close() }()

	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}
