package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/gridgraph"
)

// Scenario errors.
var (
	ErrRaggedGrid  = errors.New("grid rows differ in length")
	ErrBadCell     = errors.New("grid cell must be '.', '#' or a digit")
	ErrOffGrid     = errors.New("point outside the grid")
	ErrNoScenario  = errors.New("no grid in scenario")
	errConnUnknown = errors.New("unknown connectivity")
)

// Scenario describes a grid board and the stops of one session.
//
// Grid rows use '.' for floor (value 1), '#' for wall (value 0) and '0'–'9'
// for explicit cell values compared against LandThreshold.
type Scenario struct {
	Grid          []string `yaml:"grid" validate:"omitempty,dive,min=1"`
	Connectivity  string   `yaml:"connectivity" validate:"oneof=conn4 conn8"`
	CellSize      float64  `yaml:"cell_size" validate:"gt=0"`
	LandThreshold int      `yaml:"land_threshold"`
	Start         Point    `yaml:"start"`
	Goal          Point    `yaml:"goal"`
	Waypoints     []Point  `yaml:"waypoints" validate:"dive"`
}

// HasGrid reports whether a board was configured.
func (s Scenario) HasGrid() bool { return len(s.Grid) > 0 }

// Values converts Grid rows into cell values.
func (s Scenario) Values() ([][]int, error) {
	if !s.HasGrid() {
		return nil, ErrNoScenario
	}
	width := len(s.Grid[0])
	values := make([][]int, len(s.Grid))
	for y, row := range s.Grid {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		values[y] = make([]int, width)
		for x, c := range []byte(row) {
			switch {
			case c == '.':
				values[y][x] = 1
			case c == '#':
				values[y][x] = 0
			case c >= '0' && c <= '9':
				values[y][x] = int(c - '0')
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, c, x, y)
			}
		}
	}

	return values, nil
}

// conn maps Connectivity to the gridgraph constant.
func (s Scenario) conn() (gridgraph.Connectivity, error) {
	switch s.Connectivity {
	case "", "conn4":
		return gridgraph.Conn4, nil
	case "conn8":
		return gridgraph.Conn8, nil
	default:
		return gridgraph.Conn4, fmt.Errorf("%w: %q", errConnUnknown, s.Connectivity)
	}
}

// Board builds the grid and its search graph.
func (s Scenario) Board() (*gridgraph.GridGraph, *core.Graph, error) {
	values, err := s.Values()
	if err != nil {
		return nil, nil, err
	}
	conn, err := s.conn()
	if err != nil {
		return nil, nil, err
	}
	gg, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{
		LandThreshold: s.LandThreshold,
		Conn:          conn,
		CellSize:      s.CellSize,
	})
	if err != nil {
		return nil, nil, err
	}
	g, err := gg.ToCoreGraph()
	if err != nil {
		return nil, nil, err
	}

	return gg, g, nil
}

// Stops resolves the start, goal and waypoint cells to node UIDs of gg.
func (s Scenario) Stops(gg *gridgraph.GridGraph) (start, goal int64, waypoints []int64, err error) {
	uid := func(name string, p Point) int64 {
		if err != nil {
			return core.NoVia
		}
		var u int64
		if u, err = gg.UID(p.X, p.Y); err != nil {
			err = fmt.Errorf("%w: %s %s", ErrOffGrid, name, p)
		}

		return u
	}
	start = uid("start", s.Start)
	goal = uid("goal", s.Goal)
	for i, p := range s.Waypoints {
		waypoints = append(waypoints, uid(fmt.Sprintf("waypoint %d", i), p))
	}
	if err != nil {
		return core.NoVia, core.NoVia, nil, err
	}

	return start, goal, waypoints, nil
}

// validate checks the grid shape and that every stop lies on it.
func (s Scenario) validate() error {
	if !s.HasGrid() {
		return nil
	}
	values, err := s.Values()
	if err != nil {
		return err
	}
	h, w := len(values), len(values[0])
	check := func(name string, p Point) error {
		if p.X >= w || p.Y >= h {
			return fmt.Errorf("%w: %s %s on %dx%d", ErrOffGrid, name, p, w, h)
		}

		return nil
	}
	if err := check("start", s.Start); err != nil {
		return err
	}
	if err := check("goal", s.Goal); err != nil {
		return err
	}
	for i, p := range s.Waypoints {
		if err := check(fmt.Sprintf("waypoint %d", i), p); err != nil {
			return err
		}
	}

	return nil
}
