package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/you/carvalueai/internal/gateway"
	"github.com/you/carvalueai/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return gdb
}

func migrateAll(t *testing.T, gdb *gorm.DB) (*repository.UserRepo, *repository.CarRepo, *repository.PaymentRepo, *repository.BookingRepo) {
	t.Helper()
	users := repository.NewUserRepo(gdb)
	cars := repository.NewCarRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	bookings := repository.NewBookingRepo(gdb)
	for _, m := range []func() error{users.Migrate, cars.Migrate, payments.Migrate, bookings.Migrate} {
		if err := m(); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}
	return users, cars, payments, bookings
}

const fakeGatewaySecret = "test_key_secret"

// fakeGateway mints deterministic order ids and verifies signatures with
// the same HMAC scheme as the real client.
type fakeGateway struct {
	orders     int
	configured bool
}

func (f *fakeGateway) Configured() bool { return f.configured }
func (f *fakeGateway) KeyID() string    { return "rzp_test_key" }

func (f *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency string, notes map[string]string) (*gateway.Order, error) {
	f.orders++
	return &gateway.Order{
		ID:       fmt.Sprintf("order_TEST%d", f.orders),
		Amount:   amount,
		Currency: currency,
	}, nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return hmac.Equal([]byte(signFor(orderID, paymentID)), []byte(signature))
}

func signFor(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(fakeGatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
