package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/michaeljayl/graphicsn/internal/export"
	"github.com/michaeljayl/graphicsn/internal/storage"
	"github.com/michaeljayl/graphicsn/internal/surface"
)

// plotted lists the trace columns drawn by plot, with their captions.
var plotted = []struct{ column, caption string }{
	{"x", "x (world)"},
	{"y", "y (world)"},
	{"z", "z (world)"},
	{"u", "u (parameter)"},
	{"v", "v (parameter)"},
}

func runTrace(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	if dt <= 0 || duration <= 0 {
		return fmt.Errorf("need positive --dt and --time, got %g and %g", dt, duration)
	}
	cfg, err := resolveConfig(cmd, "klein")
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := surface.NewWalker()
	w.SetV(cfg.Klein.V)
	w.Speed = cfg.Klein.Speed
	trace, err := storage.Record(w, duration, dt)
	if err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Demo:     "klein",
		Dt:       dt,
		Duration: duration,
		V:        cfg.Klein.V,
		Speed:    cfg.Klein.Speed,
	}, trace)
	if err != nil {
		return err
	}
	log.Info("trace saved", "run", runID, "samples", len(trace), "crossings", w.Crossings)

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("samples: %d\n", len(trace))
	fmt.Printf("seam crossings: %d\n", w.Crossings)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEMO\tTIME\tDURATION\tDT\tV\tSPEED\tCROSSINGS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%.2f\t%.3f\t%d\n",
			run.ID,
			run.Demo,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.V,
			run.Speed,
			run.Crossings,
		)
	}

	return w.Flush()
}

func loadRun(id string) (*storage.RunMetadata, storage.Trace, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return nil, nil, err
	}
	trace, err := st.LoadTrace(id)
	if err != nil {
		return nil, nil, err
	}
	if len(trace) == 0 {
		return nil, nil, fmt.Errorf("run %s has no samples", id)
	}
	return meta, trace, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, trace, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("demo: %s\n", meta.Demo)
	fmt.Printf("samples: %d\n", len(trace))
	fmt.Printf("seam crossings: %d\n\n", meta.Crossings)

	for _, p := range plotted {
		graph := asciigraph.Plot(trace.Column(p.column),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// output returns the --out file, or stdout when it is unset.
func output() (io.Writer, func() error, error) {
	if outFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, trace, err := loadRun(args[0])
	if err != nil {
		return err
	}
	out, done, err := output()
	if err != nil {
		return err
	}
	if err := storage.WriteCSV(out, trace); err != nil {
		done()
		return err
	}
	return done()
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, trace, err := loadRun(args[0])
	if err != nil {
		return err
	}
	points := make([]export.Point, len(trace))
	for i, s := range trace {
		points[i] = export.Point{X: s.X, Y: s.Y}
	}
	svg := export.TrajectoryToSVG(points, svgW, svgH, "#00d4ff")
	if svg == "" {
		return fmt.Errorf("run %s is too short to draw", args[0])
	}

	out, done, err := output()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, svg); err != nil {
		done()
		return err
	}
	return done()
}
