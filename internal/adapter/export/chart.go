package export

import (
	"bytes"
	"fmt"

	"crm_reports/internal/domain/entities"
	"crm_reports/internal/domain/labels"
	"crm_reports/internal/usecase"

	"github.com/wcharczuk/go-chart/v2"
)

// StatusChart renders a bar chart with the number of quotes per status.
func StatusChart(r usecase.QuoteReport) ([]byte, error) {
	counts := quoteStatusCounts(r.Quotes)

	bars := make([]chart.Value, 0, len(entities.QuoteStatuses))
	maxVal := 0
	for _, s := range entities.QuoteStatuses {
		v := counts[s]
		if v > maxVal {
			maxVal = v
		}
		bars = append(bars, chart.Value{Value: float64(v), Label: labels.QuoteStatus(string(s))})
	}
	// go-chart rejects a zero-height range.
	yMax := float64(maxVal)
	if yMax <= 0 {
		yMax = 1
	}

	graph := chart.BarChart{
		Title:      "Orçamentos por status",
		Width:      1100,
		Height:     600,
		BarWidth:   60,
		BarSpacing: 60,
		Background: chart.Style{Padding: chart.Box{
			Top:    50,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}
	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render status chart: %w", err)
	}
	return buf.Bytes(), nil
}
