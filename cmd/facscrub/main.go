package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/facscrub/internal/cli"
	"github.com/example/facscrub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "facscrub",
		Short:   "facscrub - facility records normalizer",
		Version: version.String(),
		Long: `facscrub normalizes a facility-operations database: cleaning tasks,
hygiene inspections, and consumable usage. It fills documented defaults,
trims and canonicalizes text, clamps numeric fields to their valid ranges,
removes useless usage rows, and collapses duplicate usage records.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.RunCmd())
	rootCmd.AddCommand(cli.SampleCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
