package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/you/carvalueai/internal/gateway"
	"github.com/you/carvalueai/internal/handlers"
	"github.com/you/carvalueai/internal/ml"
	"github.com/you/carvalueai/internal/repository"
	"github.com/you/carvalueai/internal/service"
	"github.com/you/carvalueai/pkg/config"
	"github.com/you/carvalueai/pkg/db"
	"github.com/you/carvalueai/pkg/mq"
	"github.com/you/carvalueai/pkg/obs"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	shutdownTracer := obs.InitTracer("carvalue-api")
	defer func() { _ = shutdownTracer(context.Background()) }()

	gdb, err := db.Open(cfg.PGDSN)
	if err != nil {
		log.Fatal(err)
	}

	users := repository.NewUserRepo(gdb)
	cars := repository.NewCarRepo(gdb)
	payments := repository.NewPaymentRepo(gdb)
	bookings := repository.NewBookingRepo(gdb)
	for _, m := range []func() error{users.Migrate, cars.Migrate, payments.Migrate, bookings.Migrate} {
		if err := m(); err != nil {
			log.Fatal(err)
		}
	}

	// A bad artifact bundle degrades prediction, it does not stop the API.
	predictor, err := ml.LoadPredictor(cfg.ModelPath)
	if err != nil {
		log.Printf("[api] model artifacts unavailable, predictions disabled: %v", err)
	}

	var gw *gateway.Client
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		gw = gateway.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		log.Print("[api] razorpay keys missing, payment endpoints disabled")
	}

	var pub *mq.Publisher
	if cfg.RabbitURL != "" {
		pub, err = mq.NewPublisher(cfg.RabbitURL, cfg.EventExchange)
		if err != nil {
			log.Printf("[api] rabbitmq unavailable, notifications disabled: %v", err)
			pub = nil
		}
	}
	defer pub.Close()

	secret := []byte(cfg.JWTSecret)
	ttl := time.Duration(cfg.JWTExpireHr) * time.Hour

	api := &handlers.API{
		Auth:     service.NewAuthSvc(users, secret, ttl),
		Predict:  service.NewPredictSvc(predictor, cars),
		Payments: service.NewPaymentSvc(gw, payments, pub),
		Bookings: service.NewBookingSvc(bookings, payments, cars, pub),
		Stats:    service.NewStatsSvc(cars, bookings, payments),
		DB:       gdb,
		Secret:   secret,
	}

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: handlers.NewRouter(api)}

	go func() {
		log.Printf("[api] listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[api] shutdown: %v", err)
	}
}
