package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/config"
	"github.com/example/facscrub/internal/ports/primary"
	"github.com/example/facscrub/internal/wire"
)

// SampleCmd returns the sample command
func SampleCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the first rows of each table",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, err := wire.NormalizerService().Sample(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to sample tables: %w", err)
			}

			printSamples(samples)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultSampleLimit, "Rows per table")
	return cmd
}

// printSamples renders the verification sample of all three tables.
func printSamples(samples *primary.TableSamples) {
	heading := color.New(color.FgCyan, color.Bold)

	heading.Printf("tasks (first %d)\n", samples.Limit)
	if len(samples.Tasks) == 0 {
		fmt.Println("  no rows")
	}
	for _, t := range samples.Tasks {
		fmt.Printf("  #%d loc=%d %s %s [%s] %dm  %q  notes=%q\n",
			t.ID, t.LocationID, t.TaskDate, t.TaskTime, t.Status, t.DurationMins, t.TaskType, t.Notes)
	}

	heading.Printf("\ninspections (first %d)\n", samples.Limit)
	if len(samples.Inspections) == 0 {
		fmt.Println("  no rows")
	}
	for _, i := range samples.Inspections {
		fmt.Printf("  #%d loc=%d %s score=%d auditor=%d issues=%q actions=%q feedback=%q\n",
			i.ID, i.LocationID, i.InspectDate, i.HygieneScore, i.AuditorID, i.IssuesFound, i.CorrectiveActions, i.Feedback)
	}

	heading.Printf("\nconsumables (first %d)\n", samples.Limit)
	if len(samples.Consumables) == 0 {
		fmt.Println("  no rows")
	}
	for _, c := range samples.Consumables {
		fmt.Printf("  #%d %s loc=%d %s qty=%d cost=%.2f\n",
			c.UsageID, c.UsageDate, c.LocationID, c.ResourceType, c.QuantityUsed, c.TotalCost)
	}
}
