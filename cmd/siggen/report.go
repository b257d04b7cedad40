package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-siggen/dsp/chunk"
	"github.com/cwbudde/algo-siggen/dsp/group"
	"github.com/cwbudde/algo-siggen/stats/frequency"
	timestats "github.com/cwbudde/algo-siggen/stats/time"
)

// statDecimals matches the precision shown for view statistics.
const statDecimals = 3

func printReport(w io.Writer, cliArgs *CLI, req chunk.Request, res chunk.Result) error {
	var sb strings.Builder

	d := req.Descriptor
	g := group.New("siggen")
	if err := g.Add(cliArgs.Kind, *d); err != nil {
		return err
	}
	viewStart, viewEnd := g.ClampView(d.TimeStart, d.TimeEnd)
	points := group.Points(d, res.Processed)
	view := group.RoundView(timestats.Window([][]timestats.Sample{points}, viewStart, viewEnd))
	ts := timestats.Calculate(res.Processed)

	sb.WriteString(TitleStyle.Render(cliArgs.title()))
	sb.WriteString("\n")
	writeKV(&sb, "sample rate", fmt.Sprintf("%g Hz", res.SampleRate))
	writeKV(&sb, "chunks", fmt.Sprintf("%d", res.Chunks))

	sb.WriteString(SectionStyle.Render(fmt.Sprintf("View [%g, %g] s", viewStart, viewEnd)))
	sb.WriteString("\n")
	writeKV(&sb, "points", fmt.Sprintf("%d", view.Count))
	writeKV(&sb, "mean", formatStat(view.Mean))
	writeKV(&sb, "min", formatStat(view.Min))
	writeKV(&sb, "max", formatStat(view.Max))

	sb.WriteString(SectionStyle.Render("Signal"))
	sb.WriteString("\n")
	writeKV(&sb, "rms", formatStat(ts.RMS))
	writeKV(&sb, "peak", formatStat(ts.Peak))
	writeKV(&sb, "range", formatStat(ts.Range))
	writeKV(&sb, "std dev", formatStat(ts.StdDev))
	writeKV(&sb, "crest factor", formatStat(ts.CrestFactor))
	writeKV(&sb, "zero crossings", fmt.Sprintf("%d", ts.ZeroCrossings))

	if cliArgs.Spectrum && res.SampleRate > 0 {
		fs, _, err := frequency.Analyze(res.Processed, res.SampleRate)
		if err != nil {
			return err
		}
		sb.WriteString(SectionStyle.Render("Spectrum"))
		sb.WriteString("\n")
		writeKV(&sb, "bins", fmt.Sprintf("%d x %g Hz", fs.BinCount, timestats.Round(fs.BinHz, statDecimals)))
		writeKV(&sb, "peak", fmt.Sprintf("%s Hz (%s)", formatStat(fs.PeakFrequency), formatStat(fs.PeakMagnitude)))
		writeKV(&sb, "centroid", formatStat(fs.Centroid)+" Hz")
		writeKV(&sb, "rolloff", formatStat(fs.Rolloff)+" Hz")
		writeKV(&sb, "flatness", formatStat(fs.Flatness))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeKV(sb *strings.Builder, key, value string) {
	sb.WriteString(KeyStyle.Render(key))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

func formatStat(v float64) string {
	r := timestats.Round(v, statDecimals)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return fmt.Sprintf("%g", r)
}
