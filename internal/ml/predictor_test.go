package ml

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPredictLinearModel(t *testing.T) {
	b := &Bundle{
		LabelEncoders: map[string]map[string]int{},
		FeatureCols:   []string{"car_age", "km_per_year"},
		ReferenceYear: 2024,
	}
	b.Model.Intercept = 100000
	b.Model.Coefficients = []float64{1000, -1}
	b.Scaler.Mean = []float64{0, 0}
	b.Scaler.Scale = []float64{1, 1}

	p := NewPredictor(b)
	spec := p.Resolve(CarInput{
		Name: "Maruti Swift", Year: 2020, KmDriven: 50000,
		Fuel: "Petrol", SellerType: "Individual", Transmission: "Manual", Owner: "First Owner",
	})

	// car_age=4, km_per_year=10000: 100000 + 4*1000 - 10000
	price, err := p.Predict(spec)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if price != 94000 {
		t.Errorf("price = %d, want 94000", price)
	}
}

func TestPredictAppliesScaler(t *testing.T) {
	b := &Bundle{
		LabelEncoders: map[string]map[string]int{},
		FeatureCols:   []string{"car_age"},
		ReferenceYear: 2024,
	}
	b.Model.Intercept = 0
	b.Model.Coefficients = []float64{10}
	b.Scaler.Mean = []float64{2}
	b.Scaler.Scale = []float64{2}

	p := NewPredictor(b)
	spec := p.Resolve(CarInput{Name: "X", Year: 2018, Fuel: "Petrol",
		SellerType: "Individual", Transmission: "Manual", Owner: "First Owner"})

	// z = (6-2)/2 = 2, price = 20
	price, err := p.Predict(spec)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if price != 20 {
		t.Errorf("price = %d, want 20", price)
	}
}

func TestLoadBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_artifacts.json")
	doc := `{
		"model": {"intercept": 5, "coefficients": [1, 2]},
		"scaler": {"mean": [0, 0], "scale": [1, 1]},
		"label_encoders": {"fuel": {"Petrol": 1}},
		"feature_cols": ["car_age", "km_per_year"]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if b.ReferenceYear != 2024 {
		t.Errorf("ReferenceYear = %d, want the 2024 default", b.ReferenceYear)
	}
	if b.LabelEncoders["fuel"]["Petrol"] != 1 {
		t.Error("label encoders not decoded")
	}
}

func TestLoadBundleShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_artifacts.json")
	doc := `{
		"model": {"intercept": 5, "coefficients": [1]},
		"scaler": {"mean": [0, 0], "scale": [1, 1]},
		"feature_cols": ["car_age", "km_per_year"]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBundle(path); err == nil {
		t.Error("expected shape mismatch error")
	}
}

func TestLoadBundleMissingFile(t *testing.T) {
	if _, err := LoadBundle(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing artifacts file")
	}
}
