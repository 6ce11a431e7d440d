package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/you/carvalueai/internal/domain"
)

type CarRepo struct{ db *gorm.DB }

func NewCarRepo(db *gorm.DB) *CarRepo {
	return &CarRepo{db: db}
}

func (r *CarRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Car{})
}

func (r *CarRepo) Create(ctx context.Context, c *domain.Car) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CarRepo) ByID(ctx context.Context, id string) (*domain.Car, error) {
	var c domain.Car
	if err := r.db.WithContext(ctx).First(&c, "car_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CarRepo) UpdateStatus(ctx context.Context, id, to string) error {
	return r.db.WithContext(ctx).Model(&domain.Car{}).
		Where("car_id = ?", id).
		Update("status", to).Error
}

func (r *CarRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Car{}).Count(&n).Error
	return n, err
}
