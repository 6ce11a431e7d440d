package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/middlewares"
	"github.com/you/carvalueai/internal/service"
)

func (api *API) CreateOrder(c *gin.Context) {
	var in struct {
		Amount        int64  `json:"amount"`
		CarID         string `json:"car_id" binding:"required"`
		CustomerName  string `json:"customer_name"`
		CustomerEmail string `json:"customer_email"`
		CustomerPhone string `json:"customer_phone"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("car_id is required"))
		return
	}

	p, err := api.Payments.CreateOrder(c.Request.Context(), middlewares.UserID(c), service.CreateOrderInput{
		Amount:        in.Amount,
		CarID:         in.CarID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{
		"order_id": p.OrderID,
		"amount":   p.Amount,
		"currency": p.Currency,
		"key_id":   api.Payments.KeyID(),
	})
}

func (api *API) VerifyPayment(c *gin.Context) {
	var in struct {
		OrderID   string `json:"order_id" binding:"required"`
		PaymentID string `json:"payment_id" binding:"required"`
		Signature string `json:"signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("order_id, payment_id and signature are required"))
		return
	}

	if _, err := api.Payments.VerifyPayment(c.Request.Context(), in.OrderID, in.PaymentID, in.Signature); err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{})
}
