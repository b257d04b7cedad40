package group

import (
	"context"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-siggen/dsp/process"
	"github.com/cwbudde/algo-siggen/dsp/signal"
	timestats "github.com/cwbudde/algo-siggen/stats/time"
	"golang.org/x/sync/errgroup"
)

// Series is one rendered line.
type Series struct {
	Name       string
	SampleRate float64
	Raw        []float64
	Processed  []float64
	Points     []Point
}

// Render synthesizes every signal and applies cfg to each one with its own
// sample rate. Signals are rendered concurrently, at most Workers at a
// time. With an Overlay config the result is a single series, the sum of
// all signals on the first signal's axis, named "a + b + ...".
func (g *Group) Render(ctx context.Context, cfg process.Config) ([]Series, error) {
	if len(g.signals) == 0 {
		return nil, nil
	}

	out := make([]Series, len(g.signals))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.Workers)
	for i, s := range g.signals {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			series, err := renderOne(s, cfg)
			if err != nil {
				return err
			}
			out[i] = series
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if process.KindOf(cfg) != process.KindOverlay {
		return out, nil
	}

	raws := make([][]float64, len(out))
	names := make([]string, len(out))
	for i, s := range out {
		raws[i] = s.Raw
		names[i] = s.Name
	}
	sum, err := process.ApplyOverlay(raws)
	if err != nil {
		return nil, fmt.Errorf("group %q: overlay: %w", g.Name, err)
	}

	first := g.signals[0].Descriptor
	return []Series{{
		Name:       strings.Join(names, " + "),
		SampleRate: out[0].SampleRate,
		Raw:        sum,
		Processed:  sum,
		Points:     Points(&first, sum),
	}}, nil
}

func renderOne(s Signal, cfg process.Config) (Series, error) {
	d := s.Descriptor
	raw, err := signal.Generate(&d, d.Step())
	if err != nil {
		return Series{}, fmt.Errorf("signal %q: %w", s.Name, err)
	}

	// A single-sample signal has no rate; only frequency-aware configs need one.
	sr, srErr := d.SampleRate()
	if srErr != nil && process.KindOf(cfg).FrequencyAware() {
		return Series{}, fmt.Errorf("signal %q: %w", s.Name, srErr)
	}

	processed, err := process.Apply(raw, cfg, sr)
	if err != nil {
		return Series{}, fmt.Errorf("signal %q: %w", s.Name, err)
	}

	return Series{
		Name:       s.Name,
		SampleRate: sr,
		Raw:        raw,
		Processed:  processed,
		Points:     Points(&d, processed),
	}, nil
}

// ViewStats returns the statistics of every point of series inside
// [start, end], with Mean, Min and Max rounded to ViewDecimals.
func ViewStats(series []Series, start, end float64) timestats.View {
	pts := make([][]timestats.Sample, len(series))
	for i, s := range series {
		pts[i] = s.Points
	}
	return RoundView(timestats.Window(pts, start, end))
}

// RoundView rounds the Mean, Min and Max of v to ViewDecimals.
func RoundView(v timestats.View) timestats.View {
	v.Mean = timestats.Round(v.Mean, ViewDecimals)
	v.Min = timestats.Round(v.Min, ViewDecimals)
	v.Max = timestats.Round(v.Max, ViewDecimals)
	return v
}
