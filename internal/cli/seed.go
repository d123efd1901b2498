package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/db"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load messy demo fixtures",
		Long: `Populate the database with a demo dataset containing every dirt class
the normalizer repairs: missing statuses, padded text, out-of-range scores,
non-positive quantities, and duplicate usage rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}

			if err := db.SeedFixtures(database); err != nil {
				return fmt.Errorf("failed to seed fixtures: %w", err)
			}

			fmt.Println("✓ Seeded fixture data")
			fmt.Println("\nSeeded rows:")
			fmt.Println("  - 12 tasks (missing statuses/notes, padded text, negative durations)")
			fmt.Println("  - 8 inspections (scores from -3 to 15, missing feedback)")
			fmt.Println("  - 14 consumable usage rows (case-mangled types, zero quantities, duplicates)")

			return nil
		},
	}
}
