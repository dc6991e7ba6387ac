package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/michaeljayl/graphicsn/internal/export"
	"github.com/michaeljayl/graphicsn/internal/layout"
	"github.com/michaeljayl/graphicsn/internal/stringsys"
	"github.com/michaeljayl/graphicsn/internal/viz"
)

func renderDemo(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	cfg, err := resolveConfig(cmd, name)
	if err != nil {
		return err
	}
	d, err := newDemo(cfg.Demo, cfg, log)
	if err != nil {
		return err
	}
	d.Tick(0)

	canvas, edges := viz.Snapshot(d, viz.FitCamera(d), width, height, viz.DefaultWireOptions())
	log.Debug("rendered", "demo", d.Name(), "edges", len(edges), "dots", canvas.Count())

	if outFile == "" {
		fmt.Println(canvas.String())
		return nil
	}

	var svg string
	if dotsSVG {
		svg = export.CanvasToSVG(canvas, scale)
	} else {
		sw, sh := canvas.Dots()
		svg = export.EdgesToSVG(edges, sw, sh, scale)
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

func showTree(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := resolveConfig(cmd, "strings")
	if err != nil {
		return err
	}
	s, err := newDemo("strings", cfg, log)
	if err != nil {
		return err
	}

	if treeJSON {
		g, root := s.Scene()
		return export.WriteTree(os.Stdout, g, root, maxDepth)
	}

	sc := cfg.Strings
	st := stringsys.Measure(s.Scene())
	fmt.Printf("model: %s\n", sc.Model)
	fmt.Printf("depth: %d  base: %d  digits: %v\n", sc.N, sc.Base, sc.Include())
	fmt.Printf("digits graphs: %d (expected %d)\n", st.DigitsGraphs, stringsys.ExpectedDigitsGraphs(sc.N, len(sc.Include())))
	fmt.Printf("meshes: %d\n", st.Meshes)
	fmt.Printf("groups: %d\n", st.Groups)
	fmt.Printf("tree depth: %d\n", st.Depth)
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tMAX BASE")
	for _, m := range layout.Models() {
		limit := "-"
		if n := m.MaxBase(); n > 0 {
			limit = fmt.Sprint(n)
		}
		fmt.Fprintf(w, "%s\t%s\n", m, limit)
	}
	return w.Flush()
}
