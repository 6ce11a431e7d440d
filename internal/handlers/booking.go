package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/middlewares"
	"github.com/you/carvalueai/internal/service"
)

func (api *API) BookInspection(c *gin.Context) {
	var in struct {
		CarID          string `json:"car_id" binding:"required"`
		OrderID        string `json:"order_id" binding:"required"`
		CustomerName   string `json:"customer_name"`
		CustomerEmail  string `json:"customer_email"`
		CustomerPhone  string `json:"customer_phone"`
		Address        string `json:"address"`
		InspectionDate string `json:"inspection_date"`
		InspectionTime string `json:"inspection_time"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("car_id and order_id are required"))
		return
	}

	b, err := api.Bookings.Book(c.Request.Context(), middlewares.UserID(c), service.BookInput{
		CarID:          in.CarID,
		OrderID:        in.OrderID,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerPhone:  in.CustomerPhone,
		Address:        in.Address,
		InspectionDate: in.InspectionDate,
		InspectionTime: in.InspectionTime,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"booking_id": b.BookingID})
}

func (api *API) GetBooking(c *gin.Context) {
	b, err := api.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"booking": b})
}

func (api *API) GetStats(c *gin.Context) {
	stats, err := api.Stats.Collect(c.Request.Context())
	if err != nil {
		fail(c, apperr.Unavailable("stats unavailable: %v", err))
		return
	}
	ok(c, gin.H{"stats": stats})
}
