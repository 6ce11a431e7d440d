package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/domain"
	"github.com/you/carvalueai/internal/events"
	"github.com/you/carvalueai/internal/repository"
	"github.com/you/carvalueai/pkg/mq"
)

const defaultInspectionTime = "10:00 AM"

type BookInput struct {
	CarID          string
	OrderID        string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Address        string
	InspectionDate string
	InspectionTime string
}

type BookingSvc struct {
	bookings *repository.BookingRepo
	payments *repository.PaymentRepo
	cars     *repository.CarRepo
	pub      *mq.Publisher
}

func NewBookingSvc(bookings *repository.BookingRepo, payments *repository.PaymentRepo, cars *repository.CarRepo, pub *mq.Publisher) *BookingSvc {
	return &BookingSvc{bookings: bookings, payments: payments, cars: cars, pub: pub}
}

// Book confirms an inspection slot. The referenced order must already be
// verified; an unpaid order cannot book.
func (s *BookingSvc) Book(ctx context.Context, userID string, in BookInput) (*domain.Booking, error) {
	p, err := s.payments.ByOrderID(ctx, in.OrderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}
	if p.Status != domain.OrderStatusVerified {
		return nil, apperr.Validation("order %s is not verified", in.OrderID)
	}

	if in.InspectionTime == "" {
		in.InspectionTime = defaultInspectionTime
	}

	b := &domain.Booking{
		BookingID:      "BOOK_" + uuid.NewString(),
		CarID:          in.CarID,
		OrderID:        in.OrderID,
		UserID:         userID,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerPhone:  in.CustomerPhone,
		Address:        in.Address,
		InspectionDate: in.InspectionDate,
		InspectionTime: in.InspectionTime,
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	// Car status and booking are separate writes; a failure here leaves
	// the booking standing, so log and move on.
	if err := s.cars.UpdateStatus(ctx, in.CarID, domain.CarStatusInspectionBooked); err != nil {
		log.Printf("[booking] update car %s status: %v", in.CarID, err)
	}

	if err := s.pub.PublishJSON(ctx, events.RKBookingCreated, events.BookingCreated{
		BookingID:      b.BookingID,
		CarID:          b.CarID,
		OrderID:        b.OrderID,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		Address:        b.Address,
		InspectionDate: b.InspectionDate,
		InspectionTime: b.InspectionTime,
	}); err != nil {
		log.Printf("[booking] publish %s: %v", events.RKBookingCreated, err)
	}
	return b, nil
}

func (s *BookingSvc) Get(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("booking not found")
	}
	return b, nil
}
