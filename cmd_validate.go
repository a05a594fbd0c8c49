package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"warzone/maploader"
)

var validateCmd = &cobra.Command{
	Use:   "validate <map>...",
	Short: "Check maps for connectivity and continent membership",
	Long:  `Loads each map by built-in name, path or name in the map directory and runs the graph checks.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(names []string) error {
	loader := newLoader()
	var errs []error
	for _, name := range names {
		m, err := loader.Load(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		report := m.Validate()
		fmt.Printf("%s: %d territories, %d continents\n", m.Name, len(m.Territories), len(m.Continents))
		fmt.Printf("  connected: %t\n  continents connected: %t\n  unique membership: %t\n",
			report.Connected, report.ContinentsConnected, report.UniqueMembership)
		if err := report.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	fmt.Printf("built-in maps: %v\n", maploader.Names())
	return nil
}
