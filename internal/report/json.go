package report

import (
	"encoding/json"
	"fmt"

	"FundScreener/internal/model"
)

// MarshalAnalysis encodes the JSON export document.
func MarshalAnalysis(in Input) ([]byte, error) {
	doc := model.Analysis{
		ScreenedFunds: in.Funds,
		Market:        in.Market,
		News:          in.News,
		Timestamp:     in.GeneratedAt,
	}
	if doc.ScreenedFunds == nil {
		doc.ScreenedFunds = []model.RankedFund{}
	}
	if doc.News == nil {
		doc.News = []model.NewsItem{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrRender, err)
	}
	return data, nil
}

// ParseAnalysis decodes a JSON export produced by MarshalAnalysis.
func ParseAnalysis(data []byte) (*model.Analysis, error) {
	var doc model.Analysis
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &doc, nil
}
