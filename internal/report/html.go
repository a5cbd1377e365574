package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"FundScreener/internal/model"
)

//go:embed templates/report.html
var templatesFS embed.FS

var pageTemplate = template.Must(
	template.New("report.html").Funcs(template.FuncMap{
		"comma":      comma,
		"recClass":   recommendationClass,
		"levelClass": levelClass,
		"breakdown":  breakdown,
	}).ParseFS(templatesFS, "templates/report.html"),
)

type pageData struct {
	Title    string
	Subtitle string
	Updated  string
	Chart    template.URL
	Input
}

func (r *Renderer) renderHTML(in Input) ([]byte, error) {
	data := pageData{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Updated:  in.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		Input:    in,
	}
	if r.Charts {
		// A chart is decoration; the report goes out without one.
		if uri, err := scoreChartDataURI(in.Funds); err == nil {
			data.Chart = uri
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: html: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// comma groups thousands, rounding to a whole number.
func comma(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func recommendationClass(r model.Recommendation) string {
	return strings.ReplaceAll(strings.ToLower(string(r)), " ", "-")
}

func levelClass(l model.BeatenDownLevel) string {
	return "beaten-down-" + strings.ToLower(string(l))
}

func breakdown(factors []model.FactorScore) string {
	parts := make([]string, 0, len(factors))
	for _, f := range factors {
		parts = append(parts, fmt.Sprintf("%s +%d (%s)", f.Name, f.Points, f.Commentary))
	}
	return strings.Join(parts, "; ")
}
