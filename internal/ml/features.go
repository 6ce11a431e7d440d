package ml

import "fmt"

// CarInput is the raw prediction request. Pointer fields are optional and
// resolved to training-time estimates when absent.
type CarInput struct {
	Name         string
	Year         int
	KmDriven     float64
	Fuel         string
	SellerType   string
	Transmission string
	Owner        string
	Mileage      *float64
	Engine       *float64
	MaxPower     *float64
	Seats        *int
}

// CarSpec is a CarInput with every optional field resolved.
type CarSpec struct {
	Name         string
	Year         int
	KmDriven     float64
	Fuel         string
	SellerType   string
	Transmission string
	Owner        string
	Mileage      float64
	Engine       float64
	MaxPower     float64
	Seats        int
}

// Per-fuel mileage baselines, matching the estimates used when the
// training set was missing the column.
var baseMileage = map[string]float64{
	"Petrol":   18,
	"Diesel":   22,
	"CNG":      25,
	"Electric": 30,
	"LPG":      20,
}

const (
	defaultEngineCC   = 1200
	powerPerCC        = 0.07
	defaultSeats      = 5
	mileageFloor      = 10
	mileageAgeDecline = 0.01
)

// Resolve fills the optional fields the same way the training pipeline
// estimated them: fuel-based mileage declining with age, a mid-range
// engine, power as a fraction of displacement, and five seats.
func (b *Bundle) Resolve(in CarInput) CarSpec {
	spec := CarSpec{
		Name:         in.Name,
		Year:         in.Year,
		KmDriven:     in.KmDriven,
		Fuel:         in.Fuel,
		SellerType:   in.SellerType,
		Transmission: in.Transmission,
		Owner:        in.Owner,
	}

	if in.Mileage != nil {
		spec.Mileage = *in.Mileage
	} else {
		base, ok := baseMileage[in.Fuel]
		if !ok {
			base = baseMileage["Petrol"]
		}
		age := float64(b.ReferenceYear - in.Year)
		m := base * (1 - age*mileageAgeDecline)
		if m < mileageFloor {
			m = mileageFloor
		}
		spec.Mileage = m
	}

	if in.Engine != nil {
		spec.Engine = *in.Engine
	} else {
		spec.Engine = defaultEngineCC
	}

	if in.MaxPower != nil {
		spec.MaxPower = *in.MaxPower
	} else {
		spec.MaxPower = spec.Engine * powerPerCC
	}

	if in.Seats != nil {
		spec.Seats = *in.Seats
	} else {
		spec.Seats = defaultSeats
	}

	return spec
}

// encode maps a categorical label to its learned code. Labels the
// encoders never saw fall back to code 0 rather than failing.
func (b *Bundle) encode(col, label string) float64 {
	enc, ok := b.LabelEncoders[col]
	if !ok {
		return 0
	}
	return float64(enc[label])
}

// Features builds the raw (unscaled) vector in the bundle's column order.
// Years past the reference year are rejected: the derived features are
// undefined there (car_age+1 crosses zero) and the model never saw them.
func (b *Bundle) Features(spec CarSpec) ([]float64, error) {
	if spec.Year > b.ReferenceYear {
		return nil, fmt.Errorf("model year %d is after reference year %d", spec.Year, b.ReferenceYear)
	}
	carAge := float64(b.ReferenceYear - spec.Year)
	kmPerYear := spec.KmDriven / (carAge + 1)
	powerEfficiency := 0.0
	if spec.Engine != 0 {
		powerEfficiency = spec.MaxPower / spec.Engine
	}

	byName := map[string]float64{
		"year":                 float64(spec.Year),
		"km_driven":            spec.KmDriven,
		"mileage":              spec.Mileage,
		"engine":               spec.Engine,
		"max_power":            spec.MaxPower,
		"seats":                float64(spec.Seats),
		"car_age":              carAge,
		"km_per_year":          kmPerYear,
		"power_efficiency":     powerEfficiency,
		"name_encoded":         b.encode("name", spec.Name),
		"fuel_encoded":         b.encode("fuel", spec.Fuel),
		"seller_type_encoded":  b.encode("seller_type", spec.SellerType),
		"transmission_encoded": b.encode("transmission", spec.Transmission),
		"owner_encoded":        b.encode("owner", spec.Owner),
	}

	vec := make([]float64, len(b.FeatureCols))
	for i, col := range b.FeatureCols {
		v, ok := byName[col]
		if !ok {
			return nil, fmt.Errorf("unknown feature column %q in artifacts", col)
		}
		vec[i] = v
	}
	return vec, nil
}
