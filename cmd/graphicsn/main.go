package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logJSON    bool
	logFile    string
	// Live view
	useGUI    bool
	watch     bool
	frameRate int
	theme     string
	// Klein settings
	kleinV     float64
	kleinColor string
	opacity    float64
	showBall   bool
	speed      float64
	// String system settings
	depth    int
	base     int
	model    string
	digits   string
	oneColor bool
	strColor string
	// Headless runs
	dt       float64
	duration float64
	// Output
	outFile  string
	width    int
	height   int
	svgW     int
	svgH     int
	treeJSON bool
	maxDepth int
	scale    float64
	dotsSVG  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "graphicsn",
		Short:         "klein bottle walker and recursive digit layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".graphicsn", "data directory for traces")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&logJSON, "log-json", false, "log as JSON")
	pf.StringVar(&logFile, "log-file", "", "log file (live views discard logs without it)")
	pf.IntVar(&frameRate, "fps", 0, "frame rate (default from config)")
	pf.StringVar(&theme, "theme", "", "terminal theme: "+strings.Join(viz.ThemeNames(), ", "))

	kleinCmd := &cobra.Command{
		Use:   "klein",
		Short: "walk a ball over a Klein bottle",
		Args:  cobra.NoArgs,
		RunE:  runDemo("klein"),
	}
	liveFlags(kleinCmd)
	kleinFlags(kleinCmd)

	stringsCmd := &cobra.Command{
		Use:   "strings",
		Short: "nest digit layouts into a string system",
		Args:  cobra.NoArgs,
		RunE:  runDemo("strings"),
	}
	liveFlags(stringsCmd)
	stringsFlags(stringsCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [demo]",
		Short: "open a demo in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useGUI = true
			name := "klein"
			if len(args) > 0 {
				name = args[0]
			}
			return runDemo(name)(cmd, nil)
		},
	}
	guiCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "record a headless walker run",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().Float64Var(&dt, "dt", 0.016, "timestep")
	traceCmd.Flags().Float64Var(&duration, "time", 30, "duration")
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	traceCmd.Flags().Float64Var(&kleinV, "v", config.DefaultKleinV, "starting v parameter")
	traceCmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "parameter units per second")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run's xy trajectory to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgW, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgH, "height", 600, "image height")

	renderCmd := &cobra.Command{
		Use:   "render [demo]",
		Short: "draw one frame of a demo as Braille text or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderDemo,
	}
	renderCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "", "write SVG to this file instead of printing")
	renderCmd.Flags().IntVar(&width, "width", 80, "canvas width in cells")
	renderCmd.Flags().IntVar(&height, "height", 30, "canvas height in cells")
	renderCmd.Flags().Float64Var(&scale, "scale", 4, "svg pixels per dot")
	renderCmd.Flags().BoolVar(&dotsSVG, "dots", false, "write the Braille dots instead of colored edges")

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "build a string system and report its shape",
		Args:  cobra.NoArgs,
		RunE:  showTree,
	}
	stringsFlags(treeCmd)
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "dump the scene tree as JSON")
	treeCmd.Flags().IntVar(&maxDepth, "levels", 0, "levels of the JSON dump to keep (0 keeps all)")

	presetsCmd := &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for demo: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list digit layouts",
		Args:  cobra.NoArgs,
		RunE:  listModels,
	}

	rootCmd.AddCommand(kleinCmd, stringsCmd, guiCmd, traceCmd, listCmd, plotCmd,
		exportCSVCmd, exportSVGCmd, renderCmd, treeCmd, presetsCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func liveFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&useGUI, "gui", false, "open in a window instead of the terminal")
	cmd.Flags().BoolVar(&watch, "watch", false, "reapply --config whenever it changes")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func kleinFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&kleinV, "v", config.DefaultKleinV, "walker v parameter")
	f.StringVar(&kleinColor, "color", config.DefaultKleinColor, "surface color")
	f.Float64Var(&opacity, "opacity", 1, "surface opacity")
	f.BoolVar(&showBall, "ball", false, "show the walking ball")
	f.Float64Var(&speed, "speed", config.DefaultSpeed, "parameter units per second")
}

func stringsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&depth, "n", 1, "nesting depth")
	f.IntVarP(&base, "base", "b", 2, "digit base")
	f.StringVarP(&model, "model", "m", config.DefaultModel, "digit layout")
	f.StringVar(&digits, "digits", "", "comma separated digits to include (default all)")
	f.BoolVar(&oneColor, "one-color", false, "draw every unit in one color")
	f.StringVar(&strColor, "color", config.DefaultStringsColor, "color used with --one-color")
}
