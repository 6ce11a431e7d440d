package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/middlewares"
	"github.com/you/carvalueai/internal/ml"
)

func (api *API) PredictPrice(c *gin.Context) {
	// year and km_driven are pointers so a present zero (brand-new car
	// with no kilometers) passes the required check; only absence fails.
	var in struct {
		Name         string   `json:"name" binding:"required"`
		Year         *int     `json:"year" binding:"required"`
		KmDriven     *float64 `json:"km_driven" binding:"required"`
		Fuel         string   `json:"fuel" binding:"required"`
		SellerType   string   `json:"seller_type" binding:"required"`
		Transmission string   `json:"transmission" binding:"required"`
		Owner        string   `json:"owner" binding:"required"`
		Mileage      *float64 `json:"mileage"`
		Engine       *float64 `json:"engine"`
		MaxPower     *float64 `json:"max_power"`
		Seats        *int     `json:"seats"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("missing or invalid car fields: %v", err))
		return
	}

	car, err := api.Predict.Predict(c.Request.Context(), middlewares.UserID(c), ml.CarInput{
		Name:         in.Name,
		Year:         *in.Year,
		KmDriven:     *in.KmDriven,
		Fuel:         in.Fuel,
		SellerType:   in.SellerType,
		Transmission: in.Transmission,
		Owner:        in.Owner,
		Mileage:      in.Mileage,
		Engine:       in.Engine,
		MaxPower:     in.MaxPower,
		Seats:        in.Seats,
	})
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"predicted_price": car.PredictedPrice, "car_id": car.CarID})
}
