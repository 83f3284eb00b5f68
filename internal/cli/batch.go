package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/astarstep"
	"github.com/pdrpinto/astarstep/internal/scenario"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleMiss   = lipgloss.NewStyle().Foreground(colorRed)
)

func newBatchCmd() *cobra.Command {
	var (
		scenarioPath string
		workers      int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query of a scenario in parallel",
		Example: `  astar batch --scenario maze.toml
  astar batch --scenario maze.yaml --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), cmd.OutOrStdout(), scenarioPath, workers)
		},
	}
	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (.toml, .yaml)")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel engines (default: scenario value or number of CPUs)")
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func runBatch(ctx context.Context, w io.Writer, scenarioPath string, workers int) error {
	logger := loggerFromContext(ctx)

	s, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}
	m, err := s.LoadMap()
	if err != nil {
		return err
	}
	queries, err := s.Resolve(m.Grid)
	if err != nil {
		return err
	}
	opts, err := s.Options()
	if err != nil {
		return err
	}
	if workers > 0 {
		opts = append(opts, astar.WithWorkers(workers))
	}

	hooks := &astar.BasicHooks{}
	opts = append(opts, astar.WithLogger(logger), astar.WithHooks(hooks))

	started := time.Now()
	results, err := astar.SearchAll(ctx, m.Grid, queries, opts...)
	if err != nil {
		return err
	}
	logger.Info("batch finished",
		"queries", len(queries),
		"found", hooks.Arrivals.Load(),
		"expanded", hooks.ExpandedNodes.Load(),
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	if n := hooks.PoolGrowths.Load(); n > 0 {
		logger.Warn("record pools grew during the batch; raise pool_capacity",
			"growths", n, "largest", hooks.LargestCapacity.Load())
	}

	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%-4s %-9s %-9s %8s %6s %8s", "#", "from", "to", "cost", "len", "expanded")))
	for i, result := range results {
		q := s.Queries[i]
		from := fmt.Sprintf("%d,%d", q.From[0], q.From[1])
		to := fmt.Sprintf("%d,%d", q.To[0], q.To[1])
		if !result.Found {
			fmt.Fprintln(w, styleMiss.Render(fmt.Sprintf("%-4d %-9s %-9s %8s %6s %8d", i, from, to, "-", "-", result.ExpandedNodes)))
			continue
		}
		fmt.Fprintf(w, "%-4d %-9s %-9s %8.2f %6d %8d\n", i, from, to, result.TotalCost, len(result.Path), result.ExpandedNodes)
	}
	return nil
}
