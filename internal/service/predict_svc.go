package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/domain"
	"github.com/you/carvalueai/internal/ml"
	"github.com/you/carvalueai/internal/repository"
)

type PredictSvc struct {
	predictor *ml.Predictor // nil when the artifact bundle failed to load
	cars      *repository.CarRepo
}

func NewPredictSvc(p *ml.Predictor, cars *repository.CarRepo) *PredictSvc {
	return &PredictSvc{predictor: p, cars: cars}
}

func (s *PredictSvc) ModelLoaded() bool { return s.predictor != nil }

// Predict prices the car and records the prediction under a fresh car id.
func (s *PredictSvc) Predict(ctx context.Context, userID string, in ml.CarInput) (*domain.Car, error) {
	if s.predictor == nil {
		return nil, apperr.Unavailable("model not loaded")
	}

	spec := s.predictor.Resolve(in)
	price, err := s.predictor.Predict(spec)
	if err != nil {
		return nil, err
	}

	car := &domain.Car{
		CarID:          "CAR_" + uuid.NewString(),
		UserID:         userID,
		Name:           spec.Name,
		Year:           spec.Year,
		KmDriven:       spec.KmDriven,
		Fuel:           spec.Fuel,
		SellerType:     spec.SellerType,
		Transmission:   spec.Transmission,
		Owner:          spec.Owner,
		Mileage:        spec.Mileage,
		Engine:         spec.Engine,
		MaxPower:       spec.MaxPower,
		Seats:          spec.Seats,
		PredictedPrice: price,
		Status:         domain.CarStatusPredicted,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.cars.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}
