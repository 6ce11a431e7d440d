package ml

import (
	"math"
	"reflect"
	"testing"
)

func testBundle() *Bundle {
	b := &Bundle{
		LabelEncoders: map[string]map[string]int{
			"name":         {"Maruti Swift": 3, "Hyundai i20": 1},
			"fuel":         {"Petrol": 2, "Diesel": 1},
			"seller_type":  {"Individual": 1, "Dealer": 0},
			"transmission": {"Manual": 1, "Automatic": 0},
			"owner":        {"First Owner": 0, "Second Owner": 2},
		},
		FeatureCols: []string{
			"year", "km_driven", "mileage", "engine", "max_power", "seats",
			"car_age", "km_per_year", "power_efficiency",
			"name_encoded", "fuel_encoded", "seller_type_encoded",
			"transmission_encoded", "owner_encoded",
		},
		ReferenceYear: 2024,
	}
	n := len(b.FeatureCols)
	b.Model.Coefficients = make([]float64, n)
	b.Scaler.Mean = make([]float64, n)
	b.Scaler.Scale = make([]float64, n)
	for i := range b.Scaler.Scale {
		b.Scaler.Scale[i] = 1
	}
	return b
}

func fullInput() CarInput {
	mileage, engine, power := 19.5, 1200.0, 88.5
	seats := 5
	return CarInput{
		Name:         "Maruti Swift",
		Year:         2018,
		KmDriven:     45000,
		Fuel:         "Petrol",
		SellerType:   "Individual",
		Transmission: "Manual",
		Owner:        "First Owner",
		Mileage:      &mileage,
		Engine:       &engine,
		MaxPower:     &power,
		Seats:        &seats,
	}
}

func TestFeaturesDeterministic(t *testing.T) {
	b := testBundle()
	spec := b.Resolve(fullInput())

	v1, err := b.Features(spec)
	if err != nil {
		t.Fatalf("Features: %v", err)
	}
	v2, err := b.Features(spec)
	if err != nil {
		t.Fatalf("Features: %v", err)
	}
	if !reflect.DeepEqual(v1, v2) {
		t.Errorf("identical input produced different vectors:\n%v\n%v", v1, v2)
	}
}

func TestFeaturesDerived(t *testing.T) {
	b := testBundle()
	spec := b.Resolve(fullInput())
	vec, err := b.Features(spec)
	if err != nil {
		t.Fatalf("Features: %v", err)
	}

	at := func(col string) float64 {
		for i, c := range b.FeatureCols {
			if c == col {
				return vec[i]
			}
		}
		t.Fatalf("column %s not in bundle", col)
		return 0
	}

	if got := at("car_age"); got != 6 {
		t.Errorf("car_age = %v, want 6", got)
	}
	if got, want := at("km_per_year"), 45000.0/7; math.Abs(got-want) > 1e-9 {
		t.Errorf("km_per_year = %v, want %v", got, want)
	}
	if got, want := at("power_efficiency"), 88.5/1200; math.Abs(got-want) > 1e-9 {
		t.Errorf("power_efficiency = %v, want %v", got, want)
	}
	if got := at("fuel_encoded"); got != 2 {
		t.Errorf("fuel_encoded = %v, want 2", got)
	}
	if got := at("name_encoded"); got != 3 {
		t.Errorf("name_encoded = %v, want 3", got)
	}
}

func TestUnknownCategoryFallsBackToZero(t *testing.T) {
	b := testBundle()
	in := fullInput()
	in.Fuel = "Hydrogen"
	in.Name = "Never Seen Roadster"

	spec := b.Resolve(in)
	vec, err := b.Features(spec)
	if err != nil {
		t.Fatalf("Features: %v", err)
	}
	for i, col := range b.FeatureCols {
		if col == "fuel_encoded" || col == "name_encoded" {
			if vec[i] != 0 {
				t.Errorf("%s = %v for unseen label, want 0", col, vec[i])
			}
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	b := testBundle()
	in := CarInput{
		Name:         "Maruti Swift",
		Year:         2018,
		KmDriven:     45000,
		Fuel:         "Petrol",
		SellerType:   "Individual",
		Transmission: "Manual",
		Owner:        "First Owner",
	}

	spec := b.Resolve(in)

	// Petrol baseline 18, six years of 1%/yr decline.
	if want := 18 * (1 - 6*0.01); math.Abs(spec.Mileage-want) > 1e-9 {
		t.Errorf("Mileage = %v, want %v", spec.Mileage, want)
	}
	if spec.Engine != 1200 {
		t.Errorf("Engine = %v, want 1200", spec.Engine)
	}
	if want := 1200 * 0.07; math.Abs(spec.MaxPower-want) > 1e-9 {
		t.Errorf("MaxPower = %v, want %v", spec.MaxPower, want)
	}
	if spec.Seats != 5 {
		t.Errorf("Seats = %v, want 5", spec.Seats)
	}
}

func TestResolveMileageFloor(t *testing.T) {
	b := testBundle()
	in := CarInput{Name: "Old Car", Year: 1970, KmDriven: 100000, Fuel: "Petrol",
		SellerType: "Individual", Transmission: "Manual", Owner: "First Owner"}

	if spec := b.Resolve(in); spec.Mileage != 10 {
		t.Errorf("Mileage = %v for a very old car, want floor 10", spec.Mileage)
	}
}

func TestFeaturesRejectsFutureYear(t *testing.T) {
	b := testBundle()
	in := fullInput()
	in.Year = b.ReferenceYear + 1

	if _, err := b.Features(b.Resolve(in)); err == nil {
		t.Error("expected error for a model year past the reference year")
	}

	// The reference year itself is fine: car_age 0, divisor 1.
	in.Year = b.ReferenceYear
	vec, err := b.Features(b.Resolve(in))
	if err != nil {
		t.Fatalf("Features at reference year: %v", err)
	}
	for i, v := range vec {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("feature %s = %v, want finite", b.FeatureCols[i], v)
		}
	}
}

func TestPredictRejectsFutureYear(t *testing.T) {
	b := testBundle()
	p := NewPredictor(b)
	in := fullInput()
	in.Year = b.ReferenceYear + 1

	if _, err := p.Predict(p.Resolve(in)); err == nil {
		t.Error("expected error pricing a car from a future model year")
	}
}

func TestFeaturesUnknownColumn(t *testing.T) {
	b := testBundle()
	b.FeatureCols[0] = "no_such_feature"
	if _, err := b.Features(b.Resolve(fullInput())); err == nil {
		t.Error("expected error for a feature column the server cannot derive")
	}
}
