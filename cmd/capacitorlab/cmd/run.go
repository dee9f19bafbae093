package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"capacitorlab/debug"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	htmlOut   string
	pngOut    string
	jsonOut   string
	plotUnit  string
	showASCII bool
	serveAddr string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario-file>",
	Short: "Run a scenario script against the circuit model",
	Long: `Execute a scenario script line by line and record the circuit state
after every command and time step.

Scenario commands:
  battery V            set battery voltage
  size W [D]           set plate width and depth (m)
  separation S         set plate separation (m)
  charge Q             set disconnected plate charge (C)
  switch battery|open|bulb
  drag ANGLE           drag the switch to a relative angle (rad)
  release              release the switch and snap
  step DT [N]          advance N time steps of DT seconds
  probe +|- X Y [Z]    move a voltmeter probe (model coordinates)
  view +|- X Y         move a voltmeter probe (view coordinates)
  show|hide METER      toggle meter visibility
  reset                restore the initial state

Examples:
  capacitorlab run charge.txt --html curves.html
  capacitorlab run discharge.txt --bulb --png charge.png --ascii
  capacitorlab run charge.txt --serve :8080`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&htmlOut, "html", "", "write echarts HTML page")
	runCmd.Flags().StringVar(&pngOut, "png", "", "write PNG plot")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write recorded history as JSON")
	runCmd.Flags().StringVar(&plotUnit, "unit", "C", "series unit for --png and --ascii (V, C, F, J, V/m, A)")
	runCmd.Flags().BoolVar(&showASCII, "ascii", false, "plot the series in the terminal")
	runCmd.Flags().StringVar(&serveAddr, "serve", "", "serve the echarts page on this address after the run")
}

func runRun(cmd *cobra.Command, args []string) error {
	lab, err := newLab()
	if err != nil {
		return err
	}
	record := &debug.Record{}
	lab.SetDebug(record)

	if err := lab.Load(args[0]); err != nil {
		return fmt.Errorf("failed to run scenario: %w", err)
	}

	rows := [][]string{}
	for _, s := range record.Summaries() {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%+.4e", s.Min),
			fmt.Sprintf("%+.4e", s.Max),
			fmt.Sprintf("%+.4e %s", s.Final, s.Unit),
		})
	}
	fmt.Println(table(fmt.Sprintf("%d records, t=%.4gs, %s", record.Len(), lab.Time, lab.Circuit.Connection()),
		[]string{"series", "min", "max", "final"}, rows))

	if showASCII {
		for _, s := range record.Series() {
			if s.Unit != plotUnit || len(s.Data) == 0 {
				continue
			}
			fmt.Println(asciigraph.Plot(s.Data, asciigraph.Height(10), asciigraph.Width(60),
				asciigraph.Caption(fmt.Sprintf("%s (%s)", s.Name, s.Unit))))
		}
	}
	if htmlOut != "" {
		if err := writeFile(htmlOut, (&debug.Charts{Record: record}).Render); err != nil {
			return err
		}
	}
	if pngOut != "" {
		if err := writeFile(pngOut, func(w io.Writer) error { return record.Plot(w, plotUnit) }); err != nil {
			return err
		}
	}
	if jsonOut != "" {
		if err := writeFile(jsonOut, lab.Render); err != nil {
			return err
		}
	}
	if serveAddr != "" {
		http.HandleFunc("/", (&debug.Charts{Record: record}).Handler)
		fmt.Printf("serving charts on %s\n", serveAddr)
		return http.ListenAndServe(serveAddr, nil)
	}
	return nil
}

// writeFile creates path and renders into it
func writeFile(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if verbose {
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}
