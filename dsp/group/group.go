// Package group manages a named set of signals rendered together on one
// time axis.
package group

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-siggen/dsp/core"
	"github.com/cwbudde/algo-siggen/dsp/signal"
	timestats "github.com/cwbudde/algo-siggen/stats/time"
)

const (
	// DefaultTimeStart and DefaultTimeEnd bound the time axis of an empty
	// group.
	DefaultTimeStart = 0.0
	DefaultTimeEnd   = 10.0

	// MaxTimeRange caps the width of the global time axis.
	MaxTimeRange = 1000.0
	// MaxViewRange caps the width of the visible window.
	MaxViewRange = 100.0

	// PointDecimals is the rounding applied to chart points.
	PointDecimals = 6
	// ViewDecimals is the rounding applied to view statistics.
	ViewDecimals = 3
)

// Point is one chart point.
type Point = timestats.Sample

// Signal is a named descriptor.
type Signal struct {
	Name       string
	Descriptor signal.Descriptor
}

// Group is an ordered collection of uniquely named signals. It is not safe
// for concurrent modification.
type Group struct {
	Name    string
	signals []Signal
	cfg     core.ProcessorConfig
}

// New returns an empty group. opts bound the parallelism of Render through
// core.WithWorkers.
func New(name string, opts ...core.ProcessorOption) *Group {
	return &Group{Name: name, cfg: core.ApplyProcessorOptions(opts...)}
}

// Add appends a validated signal. Names must be unique and non-empty.
func (g *Group) Add(name string, d signal.Descriptor) error {
	if name == "" {
		return fmt.Errorf("group: signal name is empty: %w", core.ErrInvalidArgument)
	}
	if g.Index(name) >= 0 {
		return fmt.Errorf("group: duplicate signal %q: %w", name, core.ErrInvalidArgument)
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("group: signal %q: %w", name, err)
	}
	g.signals = append(g.signals, Signal{Name: name, Descriptor: d})
	return nil
}

// Replace swaps the descriptor of an existing signal.
func (g *Group) Replace(name string, d signal.Descriptor) error {
	i := g.Index(name)
	if i < 0 {
		return fmt.Errorf("group: no signal %q: %w", name, core.ErrInvalidArgument)
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("group: signal %q: %w", name, err)
	}
	g.signals[i].Descriptor = d
	return nil
}

// Remove deletes the named signal and reports whether it existed.
func (g *Group) Remove(name string) bool {
	i := g.Index(name)
	if i < 0 {
		return false
	}
	g.signals = slices.Delete(g.signals, i, i+1)
	return true
}

// Index returns the position of the named signal or -1.
func (g *Group) Index(name string) int {
	return slices.IndexFunc(g.signals, func(s Signal) bool { return s.Name == name })
}

// Len returns the number of signals.
func (g *Group) Len() int { return len(g.signals) }

// Signals returns a copy of the signals in insertion order.
func (g *Group) Signals() []Signal { return slices.Clone(g.signals) }

// TimeRange returns the earliest start and latest end over all signals.
// An empty group spans [DefaultTimeStart, DefaultTimeEnd]; wider spans are
// cut to MaxTimeRange from the start.
func (g *Group) TimeRange() (start, end float64) {
	if len(g.signals) == 0 {
		return DefaultTimeStart, DefaultTimeEnd
	}

	start, end = math.Inf(1), math.Inf(-1)
	for _, s := range g.signals {
		start = math.Min(start, s.Descriptor.TimeStart)
		end = math.Max(end, s.Descriptor.TimeEnd)
	}
	if end-start > MaxTimeRange {
		end = start + MaxTimeRange
	}
	return start, end
}

// ClampView fits a requested view window into TimeRange and limits its
// width to MaxViewRange. The result always has start <= end.
func (g *Group) ClampView(start, end float64) (float64, float64) {
	lo, hi := g.TimeRange()

	start = core.Clamp(start, lo, hi)
	end = core.Clamp(end, lo, hi)
	if end < start {
		end = start
	}
	if end-start > MaxViewRange {
		end = start + MaxViewRange
	}
	return start, end
}

// Points pairs values with their times on d's axis, both rounded to
// PointDecimals. The spacing is derived from len(values), so a processed
// buffer of the descriptor's length lines up with the raw one.
func Points(d *signal.Descriptor, values []float64) []Point {
	var dt float64
	if len(values) > 1 {
		dt = (d.TimeEnd - d.TimeStart) / float64(len(values)-1)
	}

	pts := make([]Point, len(values))
	for i, v := range values {
		pts[i] = Point{
			T: timestats.Round(d.TimeAt(i, dt), PointDecimals),
			Y: timestats.Round(v, PointDecimals),
		}
	}
	return pts
}
