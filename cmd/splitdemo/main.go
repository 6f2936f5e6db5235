// Command splitdemo renders the segment boundaries a layout configuration
// produces for a given area, as a quick visual sanity check. It has no
// bearing on the solving semantics of the split package; it exists purely
// to let a reader see a layout without writing a Go program against it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	layout "github.com/tuilayout/split"
	"github.com/tuilayout/split/layoutcfg"
)

var (
	segmentColors = []lipgloss.Color{"62", "107", "172", "135", "203", "37"}
	spacerColor   = lipgloss.Color("240")
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "splitdemo",
		Short: "Render the segments a layout configuration produces",
	}

	root.AddCommand(newRenderCmd())

	return root
}

func newRenderCmd() *cobra.Command {
	var configPath string
	var width, height uint16

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Split a synthetic area and print the resulting segment ruler",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(configPath)
			if err != nil {
				return fmt.Errorf("splitdemo: %w", err)
			}
			defer f.Close()

			l, err := layoutcfg.Load(f)
			if err != nil {
				return fmt.Errorf("splitdemo: %w", err)
			}

			area := layout.NewRect(0, 0, width, height)
			segments, spacers := l.SplitWithSpacers(area)

			fmt.Fprintln(cmd.OutOrStdout(), renderRuler(area, segments, spacers, l.Direction))

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a layout YAML document")
	cmd.Flags().Uint16Var(&width, "width", 80, "synthetic area width")
	cmd.Flags().Uint16Var(&height, "height", 1, "synthetic area height")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

// renderRuler paints one character per cell along the active axis: a
// colored letter per segment, a dim dot per spacer cell.
func renderRuler(area layout.Rect, segments, spacers layout.Rects, direction layout.Direction) string {
	extent := area.Width
	if direction == layout.DirectionVertical {
		extent = area.Height
	}

	cells := make([]rune, extent)
	for i := range cells {
		cells[i] = '.'
	}

	paint := func(r layout.Rect, label rune) {
		start, size := r.X, r.Width
		if direction == layout.DirectionVertical {
			start, size = r.Y, r.Height
		}

		for i := start; i < start+size && i < extent; i++ {
			cells[i] = label
		}
	}

	for _, s := range spacers {
		paint(s, '.')
	}

	for i, s := range segments {
		paint(s, rune('A'+i%26))
	}

	var b strings.Builder

	for _, c := range cells {
		style := lipgloss.NewStyle().Foreground(spacerColor)

		if c != '.' {
			style = lipgloss.NewStyle().Bold(true).Foreground(segmentColors[int(c-'A')%len(segmentColors)])
		}

		b.WriteString(style.Render(string(c)))
	}

	return b.String()
}
