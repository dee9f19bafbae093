package cmd

import (
	"fmt"
	"log"
	"os"

	capacitorlab "capacitorlab"
	"capacitorlab/circuit"
	sw "capacitorlab/element/switch"
	"capacitorlab/types"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	withBulb bool
	twoState bool
	capCount int
)

var rootCmd = &cobra.Command{
	Use:   "capacitorlab",
	Short: "Capacitor Lab physics core driver",
	Long: `Drive the capacitor lab circuit model from scenario scripts and
inspect meter readings, switch zones and recorded curves.

Examples:
  capacitorlab run scenario.txt --html curves.html      # Run a scenario and chart it
  capacitorlab run discharge.txt --bulb --ascii         # Light bulb discharge in the terminal
  capacitorlab meters --bulb                            # Default meter readings
  capacitorlab zones --two-state                        # Switch snap zones`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&withBulb, "bulb", false, "use the light bulb circuit")
	rootCmd.PersistentFlags().BoolVar(&twoState, "two-state", false, "two-state switch layout (no open zone)")
	rootCmd.PersistentFlags().IntVar(&capCount, "capacitors", 1, "number of capacitors")
}

// options builds circuit options from the global flags
func options() circuit.Options {
	opts := circuit.Options{Kind: circuit.KindCapacitance, Layout: sw.LayoutThreeZone, Capacitors: capCount}
	if withBulb {
		opts.Kind = circuit.KindLightBulb
	}
	if twoState {
		opts.Layout = sw.LayoutTwoState
	}
	return opts
}

// newLab creates a lab with the default configuration
func newLab() (*capacitorlab.Lab, error) {
	logger := log.New(os.Stderr, "capacitorlab: ", 0)
	lab, err := capacitorlab.NewLab(types.DefaultConfig(), options(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create lab: %w", err)
	}
	if !verbose {
		lab.Circuit.Logger = nil
	}
	lab.Verbose = verbose
	return lab, nil
}
