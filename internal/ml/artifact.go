// Package ml serves car-price predictions from an artifact bundle trained
// offline: a linear model over scaled features plus the label encoders the
// training run fitted for the categorical columns.
package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

type Bundle struct {
	Model struct {
		Intercept    float64   `json:"intercept"`
		Coefficients []float64 `json:"coefficients"`
	} `json:"model"`
	Scaler struct {
		Mean  []float64 `json:"mean"`
		Scale []float64 `json:"scale"`
	} `json:"scaler"`
	LabelEncoders map[string]map[string]int `json:"label_encoders"`
	FeatureCols   []string                  `json:"feature_cols"`
	ReferenceYear int                       `json:"reference_year"`
}

func LoadBundle(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open artifacts: %w", err)
	}
	defer f.Close()

	var b Bundle
	if err := json.NewDecoder(f).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode artifacts: %w", err)
	}
	n := len(b.FeatureCols)
	if n == 0 {
		return nil, fmt.Errorf("artifacts: empty feature column list")
	}
	if len(b.Model.Coefficients) != n || len(b.Scaler.Mean) != n || len(b.Scaler.Scale) != n {
		return nil, fmt.Errorf("artifacts: model/scaler shape does not match %d feature columns", n)
	}
	if b.ReferenceYear == 0 {
		b.ReferenceYear = 2024
	}
	return &b, nil
}
