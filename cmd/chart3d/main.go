// Command chart3d renders a chart definition file to a PNG image.
//
// Usage:
//
//	chart3d [flags] chart.yaml
//
// With -query x,y it also reports the chart item found at that pixel.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/chart3d"
	"github.com/gogpu/chart3d/internal/chartfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("chart3d", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		output  = fs.String("output", "chart.png", "output file")
		width   = fs.Int("width", 0, "image width (default from the chart file)")
		height  = fs.Int("height", 0, "image height (default from the chart file)")
		query   = fs.String("query", "", "report the item at pixel `x,y`")
		verbose = fs.Bool("v", false, "log render passes to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("chart3d: expected one chart file")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	chart3d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	def, err := chartfile.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	if *width > 0 {
		def.Size.Width = *width
	}
	if *height > 0 {
		def.Size.Height = *height
	}

	panel, err := def.NewPanel()
	if err != nil {
		return err
	}
	frame, err := panel.Render()
	if err != nil {
		return err
	}
	if err := frame.Pixmap.SavePNG(*output); err != nil {
		return fmt.Errorf("chart3d: save: %w", err)
	}
	fmt.Fprintf(stdout, "%s: %dx%d, %d of %d faces visible\n",
		*output, frame.Pixmap.Width(), frame.Pixmap.Height(), frame.Stats.Visible, frame.Stats.Faces)

	if *query == "" {
		return nil
	}
	x, y, err := parsePoint(*query)
	if err != nil {
		return err
	}
	ev := panel.MouseEvent(x, y)
	if ev.Element == nil {
		fmt.Fprintf(stdout, "(%g, %g): nothing\n", x, y)
		return nil
	}
	fmt.Fprintf(stdout, "(%g, %g): %v\n", x, y, ev.Key())
	if text, ok := panel.ToolTipText(x, y); ok {
		fmt.Fprintln(stdout, text)
	}
	return nil
}

func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("chart3d: query %q: want x,y", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, fmt.Errorf("chart3d: query x: %w", err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, fmt.Errorf("chart3d: query y: %w", err)
	}
	return x, y, nil
}
