package report

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"FundScreener/internal/model"
)

var recommendationColors = map[model.Recommendation]drawing.Color{
	model.StrongBuy: drawing.ColorFromHex("28a745"),
	model.Buy:       drawing.ColorFromHex("007bff"),
	model.Hold:      drawing.ColorFromHex("ffc107"),
	model.Avoid:     drawing.ColorFromHex("dc3545"),
}

// RenderScoreChart renders an SVG bar chart with one bar per fund, coloured
// by recommendation.
func RenderScoreChart(funds []model.RankedFund) ([]byte, error) {
	if len(funds) == 0 {
		return nil, errors.New("no funds to chart")
	}

	bars := make([]chart.Value, len(funds))
	for i, f := range funds {
		label := f.Code
		if label == "" {
			label = f.Name
		}
		bars[i] = chart.Value{
			Label: label,
			Value: float64(f.Score),
			Style: chart.Style{
				FillColor:   recommendationColors[f.Recommendation],
				StrokeColor: recommendationColors[f.Recommendation],
				StrokeWidth: 1,
			},
		}
	}

	graph := chart.BarChart{
		Title:    "Momentum Score",
		Width:    1200,
		Height:   420,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 10, Right: 10, Bottom: 30},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func scoreChartDataURI(funds []model.RankedFund) (template.URL, error) {
	svg, err := RenderScoreChart(funds)
	if err != nil {
		return "", err
	}
	return template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)), nil
}
