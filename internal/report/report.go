package report

import (
	"errors"
	"time"

	"FundScreener/internal/model"
	"FundScreener/internal/strategy"
)

// ErrRender marks a failure to produce or persist report output.
var ErrRender = errors.New("render report")

const (
	HTMLFile = "index.html"
	JSONFile = "fund_analysis_data.json"
)

// Input is everything a report is rendered from.
type Input struct {
	Funds       []model.RankedFund
	Market      model.MarketSnapshot
	News        []model.NewsItem
	Rejected    []model.RejectedFund
	Summary     strategy.Summary
	GeneratedAt time.Time
}

// Output holds the rendered documents.
type Output struct {
	HTML []byte
	JSON []byte
}

// Renderer turns an Input into HTML and JSON documents.
type Renderer struct {
	Title    string
	Subtitle string
	// Charts toggles the embedded score chart.
	Charts bool
}

// NewRenderer creates a Renderer with the given page headings.
func NewRenderer(title, subtitle string, charts bool) *Renderer {
	return &Renderer{Title: title, Subtitle: subtitle, Charts: charts}
}

// Render produces both documents. Any failure wraps ErrRender.
func (r *Renderer) Render(in Input) (*Output, error) {
	html, err := r.renderHTML(in)
	if err != nil {
		return nil, err
	}
	js, err := MarshalAnalysis(in)
	if err != nil {
		return nil, err
	}
	return &Output{HTML: html, JSON: js}, nil
}
