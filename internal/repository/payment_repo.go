package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/carvalueai/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Payment{})
}

func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepo) ByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkVerified attaches the payment id and signature and flips the order
// to verified. The status transition happens here and nowhere else.
func (r *PaymentRepo) MarkVerified(ctx context.Context, orderID, paymentID, signature string, at time.Time) error {
	return r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"payment_id":  paymentID,
			"signature":   signature,
			"status":      domain.OrderStatusVerified,
			"verified_at": at,
		}).Error
}

func (r *PaymentRepo) CountVerified(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("status = ?", domain.OrderStatusVerified).
		Count(&n).Error
	return n, err
}
