package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/wire"
)

// DoctorCmd returns the doctor command
func DoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that all normalization invariants hold",
		Long: `Read-only audit of the three tables: reports every row that still has
a missing default, surrounding whitespace, an out-of-range score, a
non-canonical resource type, or a non-positive quantity or cost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.AuditService().Audit(context.Background())
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			ok := color.New(color.FgGreen)
			bad := color.New(color.FgRed)

			for _, table := range report.Tables {
				if len(table.Violations) == 0 {
					ok.Printf("✓ %s: %d rows, no violations\n", table.Table, table.Rows)
					continue
				}

				bad.Printf("✗ %s: %d of %d rows violate invariants\n", table.Table, len(table.Violations), table.Rows)
				for _, v := range table.Violations {
					for _, problem := range v.Problems {
						fmt.Printf("    row %d: %s\n", v.RowID, problem)
					}
				}
			}

			if !report.Clean() {
				fmt.Println("\nRun `facscrub run` to repair these rows.")
				return fmt.Errorf("invariant violations found")
			}

			return nil
		},
	}
}
