package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
)

var metersCmd = &cobra.Command{
	Use:   "meters",
	Short: "Show meter readings of the default circuit",
	Long: `Build the circuit with default configuration, optionally apply a
battery voltage, and print every meter reading.

Examples:
  capacitorlab meters
  capacitorlab meters --battery 1.5 --bulb`,
	Args: cobra.NoArgs,
	RunE: runMeters,
}

var batteryVoltage float64

func init() {
	rootCmd.AddCommand(metersCmd)

	metersCmd.Flags().Float64Var(&batteryVoltage, "battery", 0, "battery voltage (V)")
}

func runMeters(cmd *cobra.Command, args []string) error {
	lab, err := newLab()
	if err != nil {
		return err
	}
	lab.Circuit.SetBatteryVoltage(batteryVoltage)

	rows := [][]string{}
	for _, r := range lab.Readings() {
		value := dimStyle.Render("-")
		if !math.IsNaN(r.Value) {
			value = fmt.Sprintf("%.4e %s", r.Value, r.Unit)
		}
		rows = append(rows, []string{r.Name, value, fmt.Sprint(r.Visible)})
	}
	title := fmt.Sprintf("%s circuit, %s", lab.Circuit.Kind(), lab.Circuit.Connection())
	fmt.Println(table(title, []string{"meter", "value", "visible"}, rows))
	return nil
}
