// Package handlers holds the gin endpoints. Every response is a JSON
// envelope with a status field, success or error.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/middlewares"
	"github.com/you/carvalueai/internal/service"
)

type API struct {
	Auth     *service.AuthSvc
	Predict  *service.PredictSvc
	Payments *service.PaymentSvc
	Bookings *service.BookingSvc
	Stats    *service.StatsSvc
	DB       *gorm.DB
	Secret   []byte
}

func NewRouter(api *API) *gin.Engine {
	r := gin.Default()

	r.GET("/", api.Home)

	g := r.Group("/api")
	g.GET("/health", api.Health)
	g.GET("/stats", api.GetStats)
	g.GET("/bookings/:id", api.GetBooking)

	g.POST("/auth/signup", api.Signup)
	g.POST("/auth/login", api.Login)
	g.POST("/auth/verify-token", api.VerifyToken)

	secured := g.Group("")
	secured.Use(middlewares.JWTAuth(api.Secret))
	{
		secured.POST("/auth/logout", api.Logout)
		secured.GET("/auth/me", api.Me)
		secured.POST("/predict", api.PredictPrice)
		secured.POST("/create-order", api.CreateOrder)
		secured.POST("/verify-payment", api.VerifyPayment)
		secured.POST("/book-inspection", api.BookInspection)
	}

	return r
}

func (api *API) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "CarValueAI API is running",
		"version": "1.0.0",
	})
}

func ok(c *gin.Context, fields gin.H) {
	out := gin.H{"status": "success"}
	for k, v := range fields {
		out[k] = v
	}
	c.JSON(http.StatusOK, out)
}

func fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"status": "error", "error": err.Error()})
}
