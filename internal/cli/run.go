package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/config"
	"github.com/example/facscrub/internal/db"
	"github.com/example/facscrub/internal/wire"
)

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	var noSample bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the normalization pipeline",
		Long: `Run all normalization steps in their fixed order: task repairs,
inspection repairs, consumable canonicalization and filtering, then
duplicate elimination. Afterwards a bounded sample of each table is
printed for manual verification.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			dbPath, err := db.ResolvePath()
			if err != nil {
				return fmt.Errorf("failed to resolve database path: %w", err)
			}
			fmt.Printf("Normalizing facility records at %s\n\n", dbPath)

			report, err := wire.NormalizerService().Run(ctx)
			if err != nil {
				return fmt.Errorf("normalization aborted: %w", err)
			}

			check := color.New(color.FgGreen).Sprint("✓")
			lastTable := ""
			for _, step := range report.Steps {
				if step.Table != lastTable {
					fmt.Printf("%s\n", step.Table)
					lastTable = step.Table
				}
				fmt.Printf("  %s %-34s %d row(s)\n", check, step.Step, step.RowsAffected)
			}

			fmt.Println()
			for _, t := range report.Tables {
				fmt.Printf("%s: %d → %d rows\n", t.Table, t.Before, t.After)
			}
			fmt.Printf("\nTotal rows touched: %d\n", report.TotalAffected())

			if noSample {
				return nil
			}

			limit := config.DefaultSampleLimit
			if cwd, err := os.Getwd(); err == nil {
				if cfg, err := config.LoadConfig(cwd); err == nil {
					limit = cfg.EffectiveSampleLimit()
				}
			}

			samples, err := wire.NormalizerService().Sample(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to sample tables: %w", err)
			}

			fmt.Println()
			printSamples(samples)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSample, "no-sample", false, "Skip the post-run verification sample")
	return cmd
}
