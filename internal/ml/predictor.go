package ml

import "math"

// Predictor is immutable after construction and safe for concurrent use.
type Predictor struct {
	bundle *Bundle
}

func NewPredictor(b *Bundle) *Predictor {
	return &Predictor{bundle: b}
}

func LoadPredictor(path string) (*Predictor, error) {
	b, err := LoadBundle(path)
	if err != nil {
		return nil, err
	}
	return &Predictor{bundle: b}, nil
}

func (p *Predictor) Resolve(in CarInput) CarSpec {
	return p.bundle.Resolve(in)
}

// Predict standard-scales the feature vector and evaluates the linear
// model, rounding to a whole rupee price.
func (p *Predictor) Predict(spec CarSpec) (int, error) {
	vec, err := p.bundle.Features(spec)
	if err != nil {
		return 0, err
	}

	price := p.bundle.Model.Intercept
	for i, v := range vec {
		scale := p.bundle.Scaler.Scale[i]
		if scale == 0 {
			scale = 1
		}
		z := (v - p.bundle.Scaler.Mean[i]) / scale
		price += p.bundle.Model.Coefficients[i] * z
	}
	return int(math.Round(price)), nil
}
