package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	astar "github.com/pdrpinto/astarstep"
	"github.com/pdrpinto/astarstep/grid"
	"github.com/pdrpinto/astarstep/internal/scenario"
)

var errMissingEndpoints = errors.New("start and goal are required: mark S and G on the map, add a query, or pass --from/--to")

type solveOptions struct {
	mapPath      string
	scenarioPath string
	from, to     string
	frontier     string
	diagonal     bool
	pool         int
	animate      float64
	watch        bool
}

// job is a loaded map plus everything needed to search it.
type job struct {
	m       *grid.Map
	start   grid.Point
	goal    grid.Point
	options []astar.Option
	watched []string
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a path on an ASCII map",
		Long: `Find the cheapest path between two cells of an ASCII map.

Map cells: '.' open, '#' wall, 'S' start, 'G' goal, '1'-'9' weighted cell.
The map comes from --map or from a scenario file (--scenario, TOML or YAML).`,
		Example: `  astar solve --map maze.txt
  astar solve --map maze.txt --from 0,0 --to 19,9 --diagonal
  astar solve --scenario maze.toml --animate 30
  astar solve --map maze.txt --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mapPath, "map", "m", "", "ASCII map file")
	cmd.Flags().StringVarP(&opts.scenarioPath, "scenario", "s", "", "scenario file (.toml, .yaml)")
	cmd.Flags().StringVar(&opts.from, "from", "", "start cell as x,y")
	cmd.Flags().StringVar(&opts.to, "to", "", "goal cell as x,y")
	cmd.Flags().StringVar(&opts.frontier, "frontier", "", "open list implementation: sorted or heap")
	cmd.Flags().BoolVar(&opts.diagonal, "diagonal", false, "allow diagonal moves")
	cmd.Flags().IntVar(&opts.pool, "pool", 0, "record pool capacity (default 1024)")
	cmd.Flags().Float64Var(&opts.animate, "animate", 0, "draw the search at this many steps per second")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "solve again whenever the map or scenario changes")
	cmd.MarkFlagsOneRequired("map", "scenario")
	cmd.MarkFlagsMutuallyExclusive("map", "scenario")
	return cmd
}

func runSolve(ctx context.Context, w io.Writer, opts solveOptions) error {
	j, err := opts.load()
	if err != nil {
		return err
	}
	err = solve(ctx, w, j, opts.animate)
	if !opts.watch {
		return err
	}

	logger := loggerFromContext(ctx)
	if err != nil && !errors.Is(err, astar.ErrNoPath) {
		logger.Error("solve failed", "err", err)
	}
	return watchFiles(ctx, j.watched, func() {
		j, err := opts.load()
		if err != nil {
			logger.Error("reload failed", "err", err)
			return
		}
		if err := solve(ctx, w, j, opts.animate); err != nil && !errors.Is(err, astar.ErrNoPath) {
			logger.Error("solve failed", "err", err)
		}
	})
}

func (o solveOptions) load() (*job, error) {
	var gridOpts []grid.Option
	if o.diagonal {
		gridOpts = append(gridOpts, grid.WithDiagonal())
	}

	j := &job{}
	var queries []scenario.Query
	switch {
	case o.scenarioPath != "":
		s, err := scenario.Load(o.scenarioPath)
		if err != nil {
			return nil, err
		}
		s.Diagonal = s.Diagonal || o.diagonal
		if j.m, err = s.LoadMap(); err != nil {
			return nil, err
		}
		if j.options, err = s.Options(); err != nil {
			return nil, err
		}
		queries = s.Queries
		j.watched = append(j.watched, o.scenarioPath)
		if p := s.MapPath(); p != "" {
			j.watched = append(j.watched, p)
		}
	default:
		m, err := scenario.LoadMapFile(o.mapPath, gridOpts...)
		if err != nil {
			return nil, err
		}
		j.m = m
		j.watched = append(j.watched, o.mapPath)
	}

	hasStart, hasGoal := j.m.HasStart, j.m.HasGoal
	j.start, j.goal = j.m.Start, j.m.Goal
	if len(queries) > 0 {
		j.start, j.goal = toPoint(queries[0].From), toPoint(queries[0].To)
		hasStart, hasGoal = true, true
	}
	if o.from != "" {
		p, err := parsePoint(o.from)
		if err != nil {
			return nil, err
		}
		j.start, hasStart = p, true
	}
	if o.to != "" {
		p, err := parsePoint(o.to)
		if err != nil {
			return nil, err
		}
		j.goal, hasGoal = p, true
	}
	if !hasStart || !hasGoal {
		return nil, errMissingEndpoints
	}
	for _, p := range []grid.Point{j.start, j.goal} {
		if !j.m.Grid.In(p) {
			return nil, fmt.Errorf("%w: %s", grid.ErrOutOfBounds, p)
		}
	}

	if o.frontier != "" {
		kind, err := scenario.ParseFrontier(o.frontier)
		if err != nil {
			return nil, err
		}
		j.options = append(j.options, astar.WithFrontier(kind))
	}
	if o.pool > 0 {
		j.options = append(j.options, astar.WithPoolCapacity(o.pool))
	}
	return j, nil
}

func solve(ctx context.Context, w io.Writer, j *job, stepsPerSecond float64) error {
	logger := loggerFromContext(ctx)
	g := j.m.Grid

	engine := astar.New[int](append(j.options, astar.WithLogger(logger))...)
	engine.Configure(g)
	if err := engine.Startup(g.ID(j.start), g.ID(j.goal)); err != nil {
		return err
	}

	var (
		result astar.Result[int]
		err    error
	)
	if stepsPerSecond > 0 {
		result, err = animate(ctx, w, engine, j, stepsPerSecond)
	} else {
		result, err = engine.Run(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(w, renderGrid(g, result.Path, engine.Visited(), j.start, j.goal))
	fmt.Fprintln(w, renderSummary(result, engine.Stats()))
	if !result.Found {
		return astar.ErrNoPath
	}
	return nil
}

// animate steps the engine at a fixed rate, redrawing the map after each step.
func animate(ctx context.Context, w io.Writer, engine *astar.Engine[int], j *job, stepsPerSecond float64) (astar.Result[int], error) {
	logger := loggerFromContext(ctx)
	limiter := rate.NewLimiter(rate.Limit(stepsPerSecond), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return astar.Result[int]{}, err
		}
		step, err := engine.Calculate()
		if err != nil {
			return astar.Result[int]{}, err
		}
		stats := engine.Stats()
		logger.Debug("step", "index", step.StepIndex, "outcome", step.Outcome, "open", stats.Open)

		if step.Outcome != astar.InProgress {
			return engine.Result(step)
		}
		fmt.Fprint(w, "\x1b[H\x1b[2J")
		fmt.Fprint(w, renderGrid(j.m.Grid, nil, engine.Visited(), j.start, j.goal))
	}
}

func parsePoint(s string) (grid.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return grid.Point{X: x, Y: y}, nil
}

func toPoint(xy [2]int) grid.Point { return grid.Point{X: xy[0], Y: xy[1]} }
