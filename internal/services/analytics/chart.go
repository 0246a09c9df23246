package analytics

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wealthlens/wealthlens/internal/models"
)

var chartPalette = []string{
	"2563eb", // blue-600
	"16a34a", // green-600
	"f59e0b", // amber-500
	"dc2626", // red-600
	"7c3aed", // violet-600
	"0d9488", // teal-600
	"db2777", // pink-600
	"6b7280", // gray-500
}

// RenderAllocationChart renders the asset allocation as a PNG donut chart.
// Returns raw PNG bytes.
func RenderAllocationChart(allocation []models.AssetAllocation) ([]byte, error) {
	if len(allocation) == 0 {
		return nil, fmt.Errorf("no allocation data to chart")
	}

	values := make([]chart.Value, 0, len(allocation))
	for i, row := range allocation {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", row.AssetClass, row.Percentage),
			Value: row.Value,
			Style: chart.Style{
				FillColor: drawing.ColorFromHex(chartPalette[i%len(chartPalette)]),
			},
		})
	}

	graph := chart.DonutChart{
		Title:  "Asset Allocation",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
