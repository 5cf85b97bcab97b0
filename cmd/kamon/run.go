package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pppp606/kamon"
	"github.com/pppp606/kamon/internal/config"
	"github.com/pppp606/kamon/internal/presentation/tui"
	"github.com/pppp606/kamon/pkg/adapters/pdfsheet"
	"github.com/pppp606/kamon/pkg/adapters/svgsheet"
	"github.com/pppp606/kamon/pkg/adapters/terminal"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	previewCols = 72
	previewRows = 24
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive construction session",
	Long:  `Starts an interactive drawing session on the terminal: place lines and arcs, divide them, and walk the history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		if interactive {
			tui.PrintBanner()
			guideCmd.Run(cmd, nil)
		}

		r := &repl{
			bench: kamon.New(benchOptions(cfg, logger)...),
			cfg:   cfg,
			out:   os.Stdout,
		}
		return r.loop(os.Stdin, interactive)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	// Make 'run' the default when no subcommand is given.
	rootCmd.RunE = runCmd.RunE
}

type repl struct {
	bench *kamon.Workbench
	cfg   config.Config
	out   io.Writer
}

func (r *repl) loop(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(r.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := r.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "line":
		return r.commitLine(args)
	case "arc":
		return r.commitArc(args)
	case "divide":
		return r.divide(args)
	case "points":
		return r.points()
	case "cycle":
		fmt.Fprintf(r.out, "divisions: %d\n", r.bench.CycleDivisions())
		return nil
	case "pick":
		return r.pick(args)
	case "done":
		r.bench.DeactivateDivision()
		return nil
	case "undo":
		return r.step(r.bench.Undo)
	case "redo":
		return r.step(r.bench.Redo)
	case "show":
		return r.show()
	case "status":
		return r.status()
	case "export":
		return r.export(args)
	case "help":
		guideCmd.Run(nil, nil)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d coordinates, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coordinate %q", a)
		}
		out[i] = v
	}
	return out, nil
}

func (r *repl) commitLine(args []string) error {
	c, err := parseFloats(args, 4)
	if err != nil {
		return err
	}
	line := domain.NewLine()
	line.SetFirstPoint(c[0], c[1])
	line.SetSecondPoint(c[2], c[3])
	if err := r.bench.CommitLine(line); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "line #%d committed\n", len(r.bench.Snapshot().Lines)-1)
	return nil
}

func (r *repl) commitArc(args []string) error {
	c, err := parseFloats(args, 4)
	if err != nil {
		return err
	}
	arc := domain.NewCompassArc()
	arc.SetCenter(c[0], c[1])
	arc.SetRadiusPoint(c[2], c[3])
	if err := r.bench.CommitArc(arc); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "arc #%d committed\n", len(r.bench.Snapshot().Arcs)-1)
	return nil
}

func (r *repl) divide(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: divide <line|arc> <index> <n>")
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad index %q", args[1])
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad division count %q", args[2])
	}

	snap := r.bench.Snapshot()
	var el domain.Element
	switch domain.ElementKind(args[0]) {
	case domain.KindLine:
		if index < 0 || index >= len(snap.Lines) {
			return fmt.Errorf("no line #%d", index)
		}
		el = domain.LineElement(snap.Lines[index])
	case domain.KindArc:
		if index < 0 || index >= len(snap.Arcs) {
			return fmt.Errorf("no arc #%d", index)
		}
		el = domain.ArcElement(snap.Arcs[index])
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedElement, args[0])
	}

	outcome, err := r.bench.QuickDivide(&el, n)
	if err != nil {
		return err
	}
	if !outcome.Success {
		return fmt.Errorf("%s", outcome.Reason)
	}
	return r.points()
}

func (r *repl) points() error {
	points := r.bench.DivisionPoints()
	if len(points) == 0 {
		fmt.Fprintln(r.out, "no division points (divide an element first)")
		return nil
	}
	for i, p := range points {
		fmt.Fprintf(r.out, "  %d: (%g, %g)\n", i, p.X, p.Y)
	}
	return nil
}

func (r *repl) pick(args []string) error {
	c, err := parseFloats(args, 2)
	if err != nil {
		return err
	}
	hit := r.bench.HandlePointer(domain.Pt(c[0], c[1]), func(p domain.Point) {
		fmt.Fprintf(r.out, "snapped to (%g, %g)\n", p.X, p.Y)
	})
	if !hit {
		fmt.Fprintln(r.out, "no division point in range")
	}
	return nil
}

func (r *repl) step(move func() *domain.Snapshot) error {
	snap := move()
	if snap == nil {
		fmt.Fprintln(r.out, "nothing to do")
		return nil
	}
	fmt.Fprintf(r.out, "history index: %d (%d lines, %d arcs)\n",
		r.bench.HistoryIndex(), len(snap.Lines), len(snap.Arcs))
	return nil
}

func (r *repl) show() error {
	return terminal.RenderSnapshot(
		r.out,
		r.bench.Snapshot(),
		r.bench.DivisionPoints(),
		r.bench.MarkerStyle(),
		previewCols, previewRows,
		canvasBounds(r.cfg),
	)
}

func (r *repl) status() error {
	snap := r.bench.Snapshot()
	fmt.Fprintf(r.out, "lines: %d, arcs: %d, history index: %d (undo: %v, redo: %v)\n",
		len(snap.Lines), len(snap.Arcs), r.bench.HistoryIndex(),
		r.bench.CanUndo(), r.bench.CanRedo())

	status := r.bench.DivisionStatus()
	if status.Active {
		fmt.Fprintf(r.out, "division: %s into %d parts (%d points)\n",
			status.Kind, status.Divisions, status.PointCount)
	} else {
		fmt.Fprintln(r.out, "division: inactive")
	}
	return nil
}

func (r *repl) export(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: export <file.svg|file.pdf>")
	}
	path := args[0]

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	snap := r.bench.Snapshot()
	points := r.bench.DivisionPoints()
	style := r.bench.MarkerStyle()
	bounds := canvasBounds(r.cfg)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		err = svgsheet.Export(f, snap, points, style, bounds)
	case ".pdf":
		err = pdfsheet.Export(f, snap, points, style, bounds)
	default:
		return fmt.Errorf("unsupported export format %q (use .svg or .pdf)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "exported %s\n", path)
	return nil
}
