package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/guardwalk/grid"
	"github.com/katalvlaran/guardwalk/internal/logging"
	"github.com/katalvlaran/guardwalk/loopdetect"
)

func newRenderCmd(a *app) *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the map with the patrol ('X') and loop obstructions ('O')",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.loadMap(cmd, args)
			if err != nil {
				return err
			}
			res, err := loopdetect.Detect(m, a.detectOptions(cmd)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("color") {
				color = logging.IsTerminal(out)
			}
			var paint grid.Painter
			if color {
				paint = newPainter(lipgloss.NewRenderer(out))
			}
			for _, line := range grid.Render(m.Grid, m.Start, res.Visited, res.LoopSet(), paint) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "color", false, "colour the output (default: when stdout is a terminal)")

	return cmd
}

// newPainter styles each map symbol through r.
func newPainter(r *lipgloss.Renderer) grid.Painter {
	styles := map[rune]lipgloss.Style{
		grid.SymbolObstruction: r.NewStyle().Foreground(lipgloss.Color("241")),
		grid.SymbolStart:       r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		grid.SymbolVisited:     r.NewStyle().Foreground(lipgloss.Color("39")),
		grid.SymbolLoop:        r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
	return func(sym rune) string {
		if st, ok := styles[sym]; ok {
			return st.Render(string(sym))
		}
		return string(sym)
	}
}
