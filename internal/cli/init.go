package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/config"
	"github.com/example/facscrub/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the facscrub database",
		Long:  `Create the facility records database with its schema and write .facscrub/config.json in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			// Write config first so the db package resolves the chosen path
			cfg := &config.Config{
				Version:     "1",
				DBPath:      dbPath,
				SampleLimit: config.DefaultSampleLimit,
			}
			if err := config.SaveConfig(cwd, cfg); err != nil {
				return err
			}

			resolved, err := db.ResolvePath()
			if err != nil {
				return fmt.Errorf("failed to resolve database path: %w", err)
			}
			fmt.Printf("Initializing facility records database at %s\n", resolved)

			if _, err := db.GetDB(); err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")
			fmt.Println("✓ Config written to .facscrub/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  facscrub seed    # load messy demo data")
			fmt.Println("  facscrub run     # normalize the records")

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Database file path (default ~/.facscrub/facscrub.db)")
	return cmd
}
