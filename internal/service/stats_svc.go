package service

import (
	"context"

	"github.com/you/carvalueai/internal/repository"
)

type Stats struct {
	TotalPredictions int64 `json:"total_predictions"`
	TotalBookings    int64 `json:"total_bookings"`
	TotalPayments    int64 `json:"total_payments"`
}

type StatsSvc struct {
	cars     *repository.CarRepo
	bookings *repository.BookingRepo
	payments *repository.PaymentRepo
}

func NewStatsSvc(cars *repository.CarRepo, bookings *repository.BookingRepo, payments *repository.PaymentRepo) *StatsSvc {
	return &StatsSvc{cars: cars, bookings: bookings, payments: payments}
}

// Collect counts predictions, bookings and verified payments.
func (s *StatsSvc) Collect(ctx context.Context) (*Stats, error) {
	cars, err := s.cars.Count(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.CountVerified(ctx)
	if err != nil {
		return nil, err
	}
	return &Stats{TotalPredictions: cars, TotalBookings: bookings, TotalPayments: payments}, nil
}
