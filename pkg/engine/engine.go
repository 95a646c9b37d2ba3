package engine

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/engine/traversal"
	"github.com/lintang-b-s/Antennax/pkg/interference"
	"github.com/lintang-b-s/Antennax/pkg/util"
	"go.uber.org/zap"
)

type PathCacheKey struct {
	Origin      da.Index
	Destination da.Index
}

type Engine struct {
	graph     *da.AntennaGraph
	log       *zap.Logger
	pathCache *lru.Cache[PathCacheKey, []traversal.Path]
}

func (e *Engine) GetGraph() *da.AntennaGraph {
	return e.graph
}

func NewEngine(gridFilePath string, logger *zap.Logger, pathCacheSize int) (*Engine, error) {
	logger.Info("Reading antenna grid from ", zap.String("gridFilePath", gridFilePath))
	graph, err := da.LoadGraph(gridFilePath)
	if err != nil {
		return nil, err
	}
	return NewEngineDirect(graph, logger, pathCacheSize)
}

func NewEngineDirect(graph *da.AntennaGraph, logger *zap.Logger, pathCacheSize int) (*Engine, error) {
	// the graph never changes after build, so cached path sets stay valid for the engine's lifetime
	pathCache, err := lru.New[PathCacheKey, []traversal.Path](pathCacheSize)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInvalidInput, "invalid path cache size %d", pathCacheSize)
	}

	logger.Info("Antenna graph built",
		zap.Int("antennas", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Int("labels", len(graph.Labels())),
		zap.Int("rows", graph.Bounds().Rows),
		zap.Int("cols", graph.Bounds().Cols))

	return &Engine{
		graph:     graph,
		log:       logger,
		pathCache: pathCache,
	}, nil
}

func (e *Engine) DFS(origin *da.Antenna) ([]traversal.Visit, error) {
	return traversal.DFS(e.graph, origin)
}

func (e *Engine) BFS(origin *da.Antenna) ([]traversal.Visit, error) {
	return traversal.BFS(e.graph, origin)
}

// AllPathsCached enumerates simple paths, reusing the result of an earlier identical query.
func (e *Engine) AllPathsCached(origin, destination *da.Antenna) ([]traversal.Path, error) {
	if !e.graph.HasAntenna(origin) || !e.graph.HasAntenna(destination) {
		return traversal.AllPaths(e.graph, origin, destination)
	}

	key := PathCacheKey{Origin: origin.GetID(), Destination: destination.GetID()}
	if paths, ok := e.pathCache.Get(key); ok {
		e.log.Debug("path cache hit", zap.Uint32("origin", uint32(key.Origin)),
			zap.Uint32("destination", uint32(key.Destination)))
		return paths, nil
	}

	paths, err := traversal.AllPaths(e.graph, origin, destination)
	if err != nil {
		return nil, err
	}
	e.pathCache.Add(key, paths)
	return paths, nil
}

func (e *Engine) Locations(order string, inBounds, unique bool) []da.Location {
	locs := interference.Deduce(e.graph)
	if inBounds {
		locs = interference.WithinBounds(locs, e.graph.Bounds())
	}
	if unique {
		locs = interference.Unique(locs)
	}
	if order == util.LOCATION_ORDER_REVERSED {
		locs = interference.Reverse(locs)
	}
	return locs
}

// Report is the outcome of one analysis run. Origin/Destination are nil when the lookup failed,
// in which case OriginErr/DestinationErr say why and the traversals that need them are empty.
type Report struct {
	Antennas       []*da.Antenna
	Locations      []da.Location
	Label          rune
	Origin         *da.Antenna
	Destination    *da.Antenna
	OriginErr      error
	DestinationErr error
	DFS            []traversal.Visit
	BFS            []traversal.Visit
	Paths          []traversal.Path
	Components     int
}

// Analyze runs listing, deduction, DFS and BFS from the origin antenna and all paths from origin
// to destination. Lookup failures are recorded in the report, not returned.
func (e *Engine) Analyze(cfg util.AnalysisConfig) (*Report, error) {
	label := cfg.OriginRune()
	report := &Report{
		Antennas:   e.graph.Antennas(),
		Locations:  e.Locations(cfg.LocationOrder, cfg.FilterInBounds, cfg.UniqueLocations),
		Label:      label,
		Components: len(traversal.ConnectedComponents(e.graph)),
	}
	e.log.Info("Deduced interference locations", zap.Int("locations", len(report.Locations)))

	report.Origin, report.OriginErr = e.graph.FindNthByLabel(label, cfg.OriginIndex)
	report.Destination, report.DestinationErr = e.graph.FindNthByLabel(label, cfg.DestinationIndex)
	if report.OriginErr != nil {
		e.log.Warn("origin antenna not found", zap.String("label", string(label)),
			zap.Int("index", cfg.OriginIndex))
		return report, nil
	}

	var err error
	report.DFS, err = e.DFS(report.Origin)
	if err != nil {
		return nil, err
	}
	report.BFS, err = e.BFS(report.Origin)
	if err != nil {
		return nil, err
	}

	if report.DestinationErr != nil {
		e.log.Warn("destination antenna not found", zap.String("label", string(label)),
			zap.Int("index", cfg.DestinationIndex))
		return report, nil
	}

	report.Paths, err = e.AllPathsCached(report.Origin, report.Destination)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return nil, err
	}
	e.log.Info("Enumerated paths", zap.Int("paths", len(report.Paths)))

	return report, nil
}
