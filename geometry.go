package constellation

import (
	"context"
	"math"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Geometry is the snapshot consumed by the rendering layer: where every satellite is and
// which pairs of satellites can see each other past the central body.
type Geometry struct {
	Pattern          Pattern
	Positions        []Vector3
	Visibility       *VisibilityMatrix
	Reference        Vector3 // target point before the revisit rotation
	Target           Vector3 // target point after the revisit rotation
	PlaneCurves      [][]Vector3
	ReferenceCircles [][]Vector3
	OccludingRadius  float64 // in Unit
	Unit             string  // km for Walker and m for Flower
}

// BodyMesh returns the n by n surface grid of the central body, see CentralBodyMesh.
func (g *Geometry) BodyMesh(n int) [][]Vector3 {
	return CentralBodyMesh(g.OccludingRadius, n)
}

// CentralBodyMesh returns an n by n grid on the sphere of the provided radius.
// Row k is at the polar angle kπ/(n-1) and column l at the azimuth 2lπ/(n-1), both ends included.
func CentralBodyMesh(radius float64, n int) [][]Vector3 {
	if n < 2 {
		return nil
	}
	mesh := make([][]Vector3, n)
	step := 1 / float64(n-1)
	for k := range mesh {
		mesh[k] = make([]Vector3, n)
		θ := math.Pi * float64(k) * step
		for l := range mesh[k] {
			mesh[k][l] = PolarToCartesian(radius, θ, 2*math.Pi*float64(l)*step)
		}
	}
	return mesh
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger (defaults to logfmt on stderr).
func WithLogger(logger kitlog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics records every computation in the provided metrics.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithBodies replaces the body table built from the settings.
func WithBodies(b Bodies) Option {
	return func(s *Service) {
		s.bodies = b
	}
}

// Service computes constellation geometries. It holds no state between computations
// and is safe for concurrent use.
type Service struct {
	settings Settings
	bodies   Bodies
	logger   kitlog.Logger
	metrics  *Metrics
}

// NewService returns a new Service for the provided settings.
// Unset workers, curve samples and log level take their default values.
func NewService(settings Settings, opts ...Option) *Service {
	settings = settings.withDefaults()
	s := &Service{settings: settings, bodies: settings.Bodies()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	}
	s.logger = kitlog.With(level.NewFilter(s.logger, levelOption(settings.LogLevel)), "subsys", "geometry")
	return s
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// Bodies returns the body table used by this service.
func (s *Service) Bodies() Bodies {
	return s.bodies
}

// ComputeGeometry places every satellite of the constellation and evaluates the line of sight
// of every unordered pair of satellites against the physical radius of the central body.
// Nothing is returned but the error if the parameters are invalid.
func (s *Service) ComputeGeometry(ctx context.Context, p Params) (*Geometry, error) {
	start := time.Now()
	pattern, err := p.Pattern()
	if err != nil {
		return nil, s.reject(pattern, err)
	}

	var layout *Layout
	switch pattern {
	case PatternWalker:
		layout, err = GenerateWalker(*p.Walker, s.bodies, s.settings.CurveSamples)
	case PatternFlower:
		layout, err = GenerateFlower(*p.Flower, s.bodies, s.settings.CurveSamples)
	}
	if err != nil {
		return nil, s.reject(pattern, err)
	}

	n := len(layout.Positions)
	workers := 1
	if n >= s.settings.ParallelThreshold && s.settings.Workers > 1 {
		workers = s.settings.Workers
		level.Debug(s.logger).Log("pattern", pattern, "satellites", n, "workers", workers, "message", "parallel visibility")
	}
	vis, blocked, err := EvaluateVisibility(ctx, layout.Positions, layout.OccludingRadius, workers)
	if err != nil {
		level.Warn(s.logger).Log("pattern", pattern, "satellites", n, "status", "aborted", "err", err)
		return nil, err
	}
	visible := vis.Count()
	s.metrics.observe(pattern, start, blocked, visible)
	level.Info(s.logger).Log("pattern", pattern, "satellites", n, "pairs(visible)", visible, "pairs(blocked)", blocked, "duration", time.Since(start))

	return &Geometry{
		Pattern:          pattern,
		Positions:        layout.Positions,
		Visibility:       vis,
		Reference:        layout.Reference,
		Target:           layout.Target,
		PlaneCurves:      layout.PlaneCurves,
		ReferenceCircles: layout.ReferenceCircles,
		OccludingRadius:  layout.OccludingRadius,
		Unit:             layout.Unit,
	}, nil
}

func (s *Service) reject(pattern Pattern, err error) error {
	s.metrics.fail(pattern, err)
	level.Warn(s.logger).Log("pattern", pattern, "status", "rejected", "err", err)
	return err
}
