package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Garsondee/Maze-Caster/internal/game"
	"github.com/Garsondee/Maze-Caster/internal/logging"
)

const sweepRays = 360

type reportConfig struct {
	runs      int
	width     int
	height    int
	seedBase  int64
	seedStep  int64
	workers   int
	maxTicks  int
	copyFirst bool
}

type runStats struct {
	runIndex int
	seed     int64
	scene    *game.Scene
	maze     game.MazeStats

	violations []string

	sweepMaxSteps int
	sweepEscapes  int // rays that left the grid through the exit

	attempted  bool
	solved     bool
	solveTicks int
	blocked    int
}

func main() {
	var cfg reportConfig
	var logLevel string

	flag.IntVar(&cfg.runs, "runs", 20, "number of mazes to generate")
	flag.IntVar(&cfg.width, "width", 21, "maze width (cells)")
	flag.IntVar(&cfg.height, "height", 21, "maze height (cells)")
	flag.Int64Var(&cfg.seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&cfg.seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&cfg.workers, "workers", 4, "mazes analysed in parallel")
	flag.IntVar(&cfg.maxTicks, "ticks", 20000, "autopilot tick budget per maze (0 skips the solve)")
	flag.BoolVar(&cfg.copyFirst, "copy", false, "copy the first maze to the clipboard as ASCII")
	flag.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	if cfg.runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if cfg.workers <= 0 {
		fmt.Println("error: -workers must be > 0")
		os.Exit(2)
	}
	logger, err := logging.New(logging.Options{Level: logLevel})
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	w, h := game.ClampMazeSize(cfg.width), game.ClampMazeSize(cfg.height)
	fmt.Printf("=== Headless Maze Report ===\n")
	fmt.Printf("runs=%d size=%dx%d seed_base=%d seed_step=%d workers=%d ticks=%d\n\n",
		cfg.runs, w, h, cfg.seedBase, cfg.seedStep, cfg.workers, cfg.maxTicks)

	all, err := runAll(context.Background(), cfg, logger)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	for _, rs := range all {
		printRun(rs)
	}
	failed := printAggregate(all)

	if cfg.copyFirst {
		if err := game.CopySceneASCII(all[0].scene); err != nil {
			fmt.Println("clipboard:", err)
		} else {
			fmt.Printf("clipboard: copied run 1 (seed %d)\n", all[0].seed)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// runAll analyses every run, at most cfg.workers at a time, and returns the
// results in run order.
func runAll(ctx context.Context, cfg reportConfig, logger *zap.Logger) ([]runStats, error) {
	all := make([]runStats, cfg.runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < cfg.runs; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := cfg.seedBase + int64(i)*cfg.seedStep
			all[i] = runMaze(i+1, seed, cfg.width, cfg.height, cfg.maxTicks)
			logger.Debug("run done",
				zap.Int("run", i+1),
				zap.Int64("seed", seed),
				zap.Bool("solved", all[i].solved),
				zap.Int("violations", len(all[i].violations)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return all, nil
}

func runMaze(runIndex int, seed int64, width, height, maxTicks int) runStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- reproducible maze layout
	s := game.GenerateMaze(width, height, rng)
	rs := runStats{
		runIndex: runIndex,
		seed:     seed,
		scene:    s,
		maze:     game.AnalyzeMaze(s),
	}
	rs.violations = checkMaze(s, rs.maze)
	rs.sweepMaxSteps, rs.sweepEscapes = sweep(s)

	if maxTicks > 0 {
		rs.attempted = true
		ts := game.NewTestSim(
			game.WithSessionOptions(game.WithFixedScene(s), game.WithSeed(seed)),
			game.WithScript(game.AutopilotScript()),
		)
		rs.solved = ts.RunUntil(func(ts *game.TestSim) bool { return ts.State.Level > 1 }, maxTicks)
		if ev, ok := ts.SimLog.LastOf("level", game.EventGoalReached.String()); ok {
			rs.solveTicks = ev.Tick
		}
		rs.blocked = ts.SimLog.CountCategory("move", "blocked")
	}
	return rs
}

// checkMaze lists every structural property the generator should guarantee
// that s does not have.
func checkMaze(s *game.Scene, st game.MazeStats) []string {
	var out []string
	if s.Width%2 == 0 || s.Height%2 == 0 {
		out = append(out, fmt.Sprintf("even_size=%dx%d", s.Width, s.Height))
	}
	if st.GoalCount != 1 {
		out = append(out, fmt.Sprintf("goal_count=%d", st.GoalCount))
	}
	if col, row, ok := s.Goal(); ok && col != 0 && row != 0 && col != s.Width-1 && row != s.Height-1 {
		out = append(out, fmt.Sprintf("goal_not_on_edge=(%d,%d)", col, row))
	}
	if !s.IsOpen(game.CellOf(s.Start)) {
		out = append(out, "start_blocked")
	}
	if !st.Connected {
		out = append(out, fmt.Sprintf("disconnected=%d/%d", st.Reachable, st.OpenCells))
	}
	if st.Connected && !st.Acyclic {
		out = append(out, fmt.Sprintf("cycles edges=%d open=%d", st.Edges, st.OpenCells))
	}
	if st.SolutionLen == 0 {
		out = append(out, "no_solution")
	}
	return out
}

// sweep casts a full circle of rays from the start and reports the longest
// walk in cells and how many rays escaped the grid.
func sweep(s *game.Scene) (maxSteps, escapes int) {
	far := float64(s.Width + s.Height)
	for i := 0; i < sweepRays; i++ {
		a := 2 * math.Pi * float64(i) / sweepRays
		hit := game.CastRay(s.Start, s.Start.Add(game.Vec2FromAngle(a).Scale(far)), s)
		maxSteps = max(maxSteps, hit.Steps)
		if !hit.InBounds {
			escapes++
		}
	}
	return maxSteps, escapes
}

func printRun(rs runStats) {
	status := "ok"
	if len(rs.violations) > 0 {
		status = "FAIL " + strings.Join(rs.violations, ",")
	}
	solve := "skipped"
	switch {
	case rs.solved:
		solve = fmt.Sprintf("%d_ticks(blocked=%d)", rs.solveTicks, rs.blocked)
	case rs.attempted:
		solve = fmt.Sprintf("unsolved(blocked=%d)", rs.blocked)
	}
	fmt.Printf("run=%02d seed=%d fp=%016x open=%d dead_ends=%d junctions=%d path=%d sweep_max_steps=%d escapes=%d solve=%s %s\n",
		rs.runIndex, rs.seed, rs.maze.Fingerprint, rs.maze.OpenCells, rs.maze.DeadEnds, rs.maze.Junctions,
		rs.maze.SolutionLen, rs.sweepMaxSteps, rs.sweepEscapes, solve, status)
}

// printAggregate prints run-wide totals and reports whether any run failed.
func printAggregate(all []runStats) bool {
	var (
		totalPath, totalDead, totalJunctions int
		failures, solved                     int
		solveTicks                           []int
		maxSteps                             int
	)
	for _, rs := range all {
		totalPath += rs.maze.SolutionLen
		totalDead += rs.maze.DeadEnds
		totalJunctions += rs.maze.Junctions
		maxSteps = max(maxSteps, rs.sweepMaxSteps)
		if len(rs.violations) > 0 {
			failures++
		}
		if rs.solved {
			solved++
			solveTicks = append(solveTicks, rs.solveTicks)
		}
	}
	dupes := duplicateFingerprints(all)

	fmt.Println("\n=== Aggregate ===")
	fmt.Printf("runs=%d failures=%d distinct_mazes=%d duplicate_seeds=[%s]\n",
		len(all), failures, len(all)-len(dupes), strings.Join(dupes, ","))
	fmt.Printf("avg_per_maze: path=%.1f dead_ends=%.1f junctions=%.1f\n",
		avg(totalPath, len(all)), avg(totalDead, len(all)), avg(totalJunctions, len(all)))
	fmt.Printf("sweep_max_steps=%d\n", maxSteps)
	fmt.Printf("autopilot: solved=%d/%d avg_ticks=%s median_ticks=%s\n",
		solved, len(all), avgTickString(solveTicks), medianTickString(solveTicks))
	return failures > 0
}

// duplicateFingerprints returns "seedA=seedB" for every run whose maze is
// identical to an earlier run's.
func duplicateFingerprints(all []runStats) []string {
	seen := make(map[uint64]int64, len(all))
	var out []string
	for _, rs := range all {
		if first, ok := seen[rs.maze.Fingerprint]; ok {
			out = append(out, fmt.Sprintf("%d=%d", rs.seed, first))
			continue
		}
		seen[rs.maze.Fingerprint] = rs.seed
	}
	return out
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func medianTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return fmt.Sprintf("%d", sorted[mid])
	}
	return fmt.Sprintf("%.1f", float64(sorted[mid-1]+sorted[mid])/2)
}
