package service

import (
	"context"
	"log"
	"time"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/domain"
	"github.com/you/carvalueai/internal/events"
	"github.com/you/carvalueai/internal/gateway"
	"github.com/you/carvalueai/internal/repository"
	"github.com/you/carvalueai/pkg/mq"
)

// defaultOrderAmount is 500 INR in paise, the inspection fee.
const defaultOrderAmount int64 = 50000

// Gateway is what the payment workflow needs from Razorpay.
type Gateway interface {
	Configured() bool
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency string, notes map[string]string) (*gateway.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type CreateOrderInput struct {
	Amount        int64
	CarID         string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type PaymentSvc struct {
	gw       Gateway
	payments *repository.PaymentRepo
	pub      *mq.Publisher
}

func NewPaymentSvc(gw Gateway, payments *repository.PaymentRepo, pub *mq.Publisher) *PaymentSvc {
	return &PaymentSvc{gw: gw, payments: payments, pub: pub}
}

func (s *PaymentSvc) GatewayConfigured() bool {
	return s.gw != nil && s.gw.Configured()
}

func (s *PaymentSvc) KeyID() string {
	if s.gw == nil {
		return ""
	}
	return s.gw.KeyID()
}

// CreateOrder mints a gateway order and records it with status created.
func (s *PaymentSvc) CreateOrder(ctx context.Context, userID string, in CreateOrderInput) (*domain.Payment, error) {
	if !s.GatewayConfigured() {
		return nil, apperr.Unavailable("payment gateway not configured")
	}

	amount := in.Amount
	if amount <= 0 {
		amount = defaultOrderAmount
	}

	ord, err := s.gw.CreateOrder(ctx, amount, "INR", map[string]string{
		"car_id":         in.CarID,
		"customer_name":  in.CustomerName,
		"customer_email": in.CustomerEmail,
	})
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		OrderID:       ord.ID,
		CarID:         in.CarID,
		UserID:        userID,
		Amount:        ord.Amount,
		Currency:      ord.Currency,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Status:        domain.OrderStatusCreated,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// VerifyPayment checks the callback signature and, on a match, moves the
// order to verified. A mismatch leaves the order untouched.
func (s *PaymentSvc) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.Payment, error) {
	if !s.GatewayConfigured() {
		return nil, apperr.Unavailable("payment gateway not configured")
	}
	p, err := s.payments.ByOrderID(ctx, orderID)
	if err != nil {
		return nil, apperr.NotFound("order not found")
	}

	if !s.gw.VerifySignature(orderID, paymentID, signature) {
		return nil, apperr.SignatureMismatch()
	}

	// The created -> verified transition happens once; a repeat callback
	// is acknowledged without touching the stored record.
	if p.Status == domain.OrderStatusVerified {
		return p, nil
	}

	now := time.Now().UTC()
	if err := s.payments.MarkVerified(ctx, orderID, paymentID, signature, now); err != nil {
		return nil, err
	}
	p.PaymentID = paymentID
	p.Signature = signature
	p.Status = domain.OrderStatusVerified
	p.VerifiedAt = &now

	if err := s.pub.PublishJSON(ctx, events.RKPaymentVerified, events.PaymentVerified{
		OrderID:       p.OrderID,
		PaymentID:     p.PaymentID,
		CarID:         p.CarID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		CustomerEmail: p.CustomerEmail,
	}); err != nil {
		log.Printf("[payment] publish %s: %v", events.RKPaymentVerified, err)
	}
	return p, nil
}
