// Package charts renders statistic distributions as interactive HTML
// charts. Output is file-based only; no GUI toolkit is involved.
package charts

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ramonehamilton/lotto-companion/internal/analysis"
)

// Config holds chart rendering configuration.
type Config struct {
	Title      string
	Subtitle   string
	XAxisLabel string
	YAxisLabel string
	Width      string
	Height     string
	Theme      string
}

// DefaultConfig returns default chart configuration.
func DefaultConfig(title string) Config {
	return Config{
		Title:  title,
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
	}
}

// RenderDistribution writes a bar chart of a value distribution, keys
// ascending, to outputPath as a standalone HTML file.
func RenderDistribution(dist analysis.Distribution, config Config, outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: config.XAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: config.YAxisLabel}),
	)

	keys := dist.SortedKeys()
	labels := make([]string, len(keys))
	values := make([]opts.BarData, len(keys))
	for i, k := range keys {
		labels[i] = strconv.Itoa(k)
		values[i] = opts.BarData{Value: dist[k]}
	}

	bar.SetXAxis(labels).AddSeries("count", values)
	return renderTo(outputPath, bar.Render)
}

// RenderGridPatterns writes a bar chart of a grid-pattern distribution,
// most frequent pattern first.
func RenderGridPatterns(dist map[analysis.GridPattern]int, config Config, outputPath string) error {
	type entry struct {
		pattern analysis.GridPattern
		count   int
	}
	entries := make([]entry, 0, len(dist))
	for p, c := range dist {
		entries = append(entries, entry{pattern: p, count: c})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].count > entries[j].count })

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
	)

	labels := make([]string, len(entries))
	values := make([]opts.BarData, len(entries))
	for i, e := range entries {
		labels[i] = string(e.pattern)
		values[i] = opts.BarData{Value: e.count}
	}

	bar.SetXAxis(labels).AddSeries("draws", values)
	return renderTo(outputPath, bar.Render)
}

// RenderTrend writes a line chart of per-draw values, index 1 being the
// most recent draw.
func RenderTrend(seriesName string, values []int, config Config, outputPath string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: config.XAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: config.YAxisLabel}),
	)

	labels := make([]string, len(values))
	points := make([]opts.LineData, len(values))
	for i, v := range values {
		labels[i] = strconv.Itoa(i + 1)
		points[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(labels).
		AddSeries(seriesName, points).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderTo(outputPath, line.Render)
}

func renderTo(outputPath string, render func(w io.Writer) error) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
