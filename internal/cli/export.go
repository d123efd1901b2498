package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/wire"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all tables to an xlsx workbook",
		Long:  `Write the current contents of tasks, inspections and consumables to an xlsx workbook, one sheet per table. Usually run after a normalization pass.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.ExportService().ExportWorkbook(context.Background(), out); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			fmt.Printf("✓ Exported facility records to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "facility_records_cleaned.xlsx", "Output workbook path")
	return cmd
}
