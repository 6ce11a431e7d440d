package events

import (
	"encoding/json"
	"fmt"
)

const (
	RKPaymentVerified = "payment.verified"
	RKBookingCreated  = "booking.created"
)

type PaymentVerified struct {
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	CarID         string `json:"car_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
}

type BookingCreated struct {
	BookingID      string `json:"booking_id"`
	CarID          string `json:"car_id"`
	OrderID        string `json:"order_id"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	Address        string `json:"address"`
	InspectionDate string `json:"inspection_date"`
	InspectionTime string `json:"inspection_time"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
