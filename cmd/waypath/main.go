// Command waypath runs one pathfinding session over a grid scenario and
// prints the stitched route.
//
// Usage:
//
//	waypath -config maze.yaml [-progress 250ms] [-verify]
//	waypath -generate maze -size 31x21 -seed 7
//
// Engine, logging and metrics settings come from the config file and
// WAYPATH_* environment variables. SIGINT/SIGTERM tear the session down.
//
// Exit codes: 0 route found, 1 error, 3 no route.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/waypath/bfs"
	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/config"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/katalvlaran/waypath/gridgraph"
	"github.com/katalvlaran/waypath/pathfinder"
)

var (
	errNoRoute     = errors.New("waypath: no route")
	errNoScenario  = errors.New("waypath: config has no scenario grid")
	errBadGenerate = errors.New("waypath: bad -generate request")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, errNoRoute):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, loads the scenario and drives one session to completion.
func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("waypath", flag.ContinueOnError)
	fs.SetOutput(out)
	cfgPath := fs.String("config", "", "YAML config with a scenario")
	progress := fs.Duration("progress", 0, "print search progress at this interval (0 disables)")
	verify := fs.Bool("verify", true, "check each leg's cost against Dijkstra")
	generate := fs.String("generate", "", "replace the scenario board: open, scatter or maze")
	size := fs.String("size", "21x15", "generated board size WxH")
	seed := fs.Uint64("seed", 1, "generator seed")
	density := fs.Float64("density", 0.3, "wall probability for scatter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *generate != "" {
		if err := generateScenario(cfg, *generate, *size, *seed, *density); err != nil {
			return err
		}
	}
	if !cfg.Scenario.HasGrid() {
		return errNoScenario
	}
	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var metrics *pathfinder.Metrics
	if cfg.Metrics.Enabled {
		metrics = pathfinder.NewMetrics(cfg.Metrics.Namespace)
		if cfg.Metrics.Addr != "" {
			shutdown := serveMetrics(cfg.Metrics.Addr, metrics, log)
			defer shutdown()
		}
	}

	gg, g, err := cfg.Scenario.Board()
	if err != nil {
		return err
	}
	start, goal, waypoints, err := cfg.Scenario.Stops(gg)
	if err != nil {
		return err
	}
	stops := append(append([]int64{start}, waypoints...), goal)
	if err := precheck(out, gg, g, stops); err != nil {
		return err
	}

	pf, err := pathfinder.New(g, cfg.PathfinderOptions(log, metrics)...)
	if err != nil {
		return err
	}
	defer pf.Close()

	if err := pf.Start(start, goal, waypoints); err != nil {
		return err
	}
	if *progress > 0 {
		go report(ctx, out, gg, pf, *progress)
	}
	if err := pf.Wait(ctx); err != nil {
		pf.Close()
		return fmt.Errorf("waypath: interrupted: %w", err)
	}

	if err := pf.Err(); err != nil {
		return err
	}
	if !pf.PathFound() {
		render(out, gg, stops, nil)
		return fmt.Errorf("%w from %s to %s", errNoRoute, cellName(gg, start), cellName(gg, goal))
	}

	route := pf.RouteWithStart()
	render(out, gg, stops, route)
	cost := pathCost(g, route)
	fmt.Fprintf(out, "route: %d steps, cost %.3f, session %s\n", len(route)-1, cost, pf.SessionID())
	fmt.Fprintln(out, routeString(gg, route))

	if *verify {
		best, err := optimalCost(g, stops)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "dijkstra: cost %.3f\n", best)
		if cost > best+1e-9 {
			return fmt.Errorf("waypath: route cost %.3f exceeds optimum %.3f", cost, best)
		}
	}

	return nil
}

// generateScenario replaces the configured board with a generated one.
// Waypoints are dropped since they may land on walls.
func generateScenario(cfg *config.Config, kind, size string, seed uint64, density float64) error {
	var w, h int
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil {
		return fmt.Errorf("%w: size %q: %w", errBadGenerate, size, err)
	}
	var c builder.Constructor
	switch kind {
	case "open":
		c = builder.Open(w, h)
	case "scatter":
		c = builder.Scatter(w, h, density)
	case "maze":
		c = builder.Maze(w, h)
	default:
		return fmt.Errorf("%w: unknown kind %q", errBadGenerate, kind)
	}
	b, err := builder.Build(c, builder.WithSeed(seed))
	if err != nil {
		return err
	}

	cfg.Scenario.Grid = b.Rows()
	cfg.Scenario.Start = config.Point{X: b.Start.X, Y: b.Start.Y}
	cfg.Scenario.Goal = config.Point{X: b.Goal.X, Y: b.Goal.Y}
	cfg.Scenario.Waypoints = nil

	return cfg.Validate()
}

// precheck warns about legs that cannot succeed and reports how many walls
// would have to go to open them.
func precheck(out io.Writer, gg *gridgraph.GridGraph, g *core.Graph, stops []int64) error {
	for i := 1; i < len(stops); i++ {
		from, to := stops[i-1], stops[i]
		ok, err := bfs.Reachable(g, from, to)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		_, walls, err := gg.Breach(from, to)
		if err != nil {
			fmt.Fprintf(out, "leg %s -> %s: unreachable\n", cellName(gg, from), cellName(gg, to))
			continue
		}
		fmt.Fprintf(out, "leg %s -> %s: unreachable, %d wall(s) in the way\n",
			cellName(gg, from), cellName(gg, to), walls)
	}

	return nil
}

// report prints the session state until it settles or ctx ends.
func report(ctx context.Context, out io.Writer, gg *gridgraph.GridGraph, pf *pathfinder.Pathfinder, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		v := pf.Snapshot()
		if !v.State.Active() {
			return
		}
		active := "-"
		if v.ActiveUID != core.NoVia {
			active = cellName(gg, v.ActiveUID)
		}
		fmt.Fprintf(out, "%s: active %s, frontier %d, route %d\n", v.State, active, len(v.Frontier), len(v.Route))
	}
}

// serveMetrics exposes m on addr until the returned func is called.
func serveMetrics(addr string, m *pathfinder.Metrics, log *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("metrics listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// optimalCost sums the Dijkstra distance of every leg.
func optimalCost(g *core.Graph, stops []int64) (float64, error) {
	total := 0.0
	for i := 1; i < len(stops); i++ {
		_, d, err := dijkstra.ShortestPath(g, stops[i-1], stops[i])
		if err != nil {
			return 0, fmt.Errorf("waypath: verify leg %d: %w", i, err)
		}
		total += d
	}

	return total, nil
}

func pathCost(g *core.Graph, route []int64) float64 {
	total := 0.0
	for i := 1; i < len(route); i++ {
		total += g.EdgeCost(route[i-1], route[i])
	}

	return total
}

func cellName(gg *gridgraph.GridGraph, uid int64) string {
	x, y := gg.Coordinate(uid)

	return fmt.Sprintf("(%d,%d)", x, y)
}

func routeString(gg *gridgraph.GridGraph, route []int64) string {
	parts := make([]string, len(route))
	for i, uid := range route {
		parts[i] = cellName(gg, uid)
	}

	return strings.Join(parts, " ")
}

// render draws the board: '#' wall, '*' route, 'S' start, 'G' goal,
// digits for waypoints.
func render(out io.Writer, gg *gridgraph.GridGraph, stops, route []int64) {
	marks := make(map[int64]byte, len(route)+len(stops))
	for _, uid := range route {
		marks[uid] = '*'
	}
	for i, uid := range stops {
		switch {
		case i == 0:
			marks[uid] = 'S'
		case i == len(stops)-1:
			marks[uid] = 'G'
		default:
			marks[uid] = byte('0' + i%10)
		}
	}

	var b strings.Builder
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			uid, _ := gg.UID(x, y)
			c, ok := marks[uid]
			switch {
			case ok:
			case !gg.Walkable(x, y):
				c = '#'
			default:
				c = '.'
			}
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(out, b.String())
}
