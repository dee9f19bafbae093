package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Show switch snap zones and connection points",
	Long: `Print the angular snap zones of the circuit switch and the
connection reached from each zone on release.

Examples:
  capacitorlab zones
  capacitorlab zones --bulb --two-state`,
	Args: cobra.NoArgs,
	RunE: runZones,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	lab, err := newLab()
	if err != nil {
		return err
	}
	pair := lab.Circuit.Branch().Switch
	config := lab.Circuit.Config()

	rows := [][]string{}
	for _, z := range pair.Layout().Zones(config) {
		bound := ")"
		if z.Closed {
			bound = "]"
		}
		rows = append(rows, []string{
			z.Side.String(),
			fmt.Sprintf("[%.4f, %.4f%s", z.Min, z.Max, bound),
		})
	}
	fmt.Println(table(fmt.Sprintf("%s layout", pair.Layout()), []string{"zone", "absolute angle (rad)"}, rows))

	rows = rows[:0]
	for _, p := range pair.Points() {
		rows = append(rows, []string{
			p.Connection.String(),
			fmt.Sprintf("%.4f", p.Angle),
			fmt.Sprintf("%+.4f", p.Angle-pair.Offset()),
		})
	}
	fmt.Println(table("connection points", []string{"connection", "absolute", "relative"}, rows))
	fmt.Println(dimStyle.Render(fmt.Sprintf("drag range [%.4f, %.4f] rad relative to rest", pair.MinAngle(), pair.MaxAngle())))
	return nil
}
