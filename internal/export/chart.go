package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cladplan/cladplan/internal/engine"
)

// WriteComparisonChart renders a scenario comparison as a standalone HTML bar
// chart: panels to purchase and waste area per candidate panel size. Failed
// scenarios are left out of the chart.
func WriteComparisonChart(path string, results []engine.ComparisonResult) error {
	names := make([]string, 0, len(results))
	panels := make([]opts.BarData, 0, len(results))
	waste := make([]opts.BarData, 0, len(results))

	for _, r := range results {
		if r.Error != "" {
			continue
		}
		names = append(names, r.Scenario.Name)
		panels = append(panels, opts.BarData{Value: r.PanelsRequired})
		waste = append(waste, opts.BarData{Value: r.WasteArea})
	}
	if len(names) == 0 {
		return fmt.Errorf("no successful scenarios to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "CladPlan Scenario Comparison",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Panel Scenario Comparison",
			Subtitle: "Panels to purchase and waste area per candidate panel size",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(names).
		AddSeries("Panels to purchase", panels).
		AddSeries("Waste area (cm2)", waste)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := bar.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return f.Close()
}
