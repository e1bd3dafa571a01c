// Command chart3dview shows a chart definition file in the terminal.
//
// Drag with the mouse or use the arrow keys to rotate, the wheel or +/-
// to zoom, and hover over an item to see its tooltip.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/chart3d"
	"github.com/gogpu/chart3d/internal/chartfile"
	"github.com/gogpu/chart3d/internal/tui"
)

func main() {
	logFile := flag.String("log", "", "write debug logs to `file`")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: chart3dview [flags] chart.yaml")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		chart3d.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	def, err := chartfile.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	// Titles are shown in the header line instead of the canvas.
	panel, err := def.NewPanel(chart3d.WithTitleSizes(0, 0))
	if err != nil {
		log.Fatal(err)
	}

	if _, err := tea.NewProgram(tui.New(panel), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
