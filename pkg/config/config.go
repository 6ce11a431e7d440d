package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// JWT
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireHr int    `envconfig:"JWT_EXPIRE_HR" default:"24"`
	// Razorpay
	RazorpayKeyID     string `envconfig:"RAZORPAY_KEY_ID" default:""`
	RazorpayKeySecret string `envconfig:"RAZORPAY_KEY_SECRET" default:""`
	// Model artifacts
	ModelPath string `envconfig:"MODEL_PATH" default:"model_artifacts.json"`
	// Events
	RabbitURL     string `envconfig:"RABBIT_URL" default:""`
	EventExchange string `envconfig:"EVENT_EXCHANGE" default:"carvalue.exchange"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
