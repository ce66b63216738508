package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-graph/internal/particle"
	"github.com/iburimskiy/particle-graph/internal/ui"
)

func statsCmd() *cobra.Command {
	var (
		width, height int
		samples       int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate particle graphs and summarize their shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if samples <= 0 {
				return fmt.Errorf("samples must be positive, got %d", samples)
			}
			out := cmd.OutOrStdout()
			ui.Banner(out, "graph statistics")

			rng := s.rand()
			var total particle.Stats
			for i := 0; i < samples; i++ {
				st := particle.Summarize(particle.Generate(rng, float64(width), float64(height), s.mode))
				total.Particles += st.Particles
				total.Nodes += st.Nodes
				total.Edges += st.Edges
				for d, n := range st.OutDegree {
					total.OutDegree[d] += n
				}
			}

			fmt.Fprintf(out, "  Viewport:        %dx%d (%s)\n", width, height, s.mode)
			fmt.Fprintf(out, "  Samples:         %d (seed %d)\n", samples, s.seed)
			fmt.Fprintf(out, "  Particles:       %d per graph\n", total.Particles/samples)
			fmt.Fprintf(out, "  Nodes:           %.2f per graph (%.1f%%)\n",
				float64(total.Nodes)/float64(samples), percent(total.Nodes, total.Particles))
			fmt.Fprintf(out, "  Edges:           %.2f per graph\n", float64(total.Edges)/float64(samples))
			if total.Nodes > 0 {
				fmt.Fprintf(out, "  Mean out-degree: %.2f\n", float64(total.Edges)/float64(total.Nodes))
			}
			fmt.Fprintln(out)

			rows := make([][]string, 0, len(total.OutDegree))
			for d, n := range total.OutDegree {
				rows = append(rows, []string{
					strconv.Itoa(d),
					strconv.Itoa(n),
					fmt.Sprintf("%.1f%%", percent(n, total.Nodes)),
					ui.Bar(n, total.Nodes, 30),
				})
			}
			ui.Table(out, []string{"out-degree", "nodes", "share", ""}, rows)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 1500, "viewport width in pixels")
	f.IntVar(&height, "height", 800, "viewport height in pixels")
	f.IntVar(&samples, "samples", 1, "graphs to generate and aggregate")
	return cmd
}

func percent(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return 100 * float64(n) / float64(of)
}
