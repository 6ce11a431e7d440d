package handlers

import (
	"github.com/gin-gonic/gin"
)

func (api *API) Health(c *gin.Context) {
	dbOK := false
	if api.DB != nil {
		if sqlDB, err := api.DB.DB(); err == nil {
			dbOK = sqlDB.PingContext(c.Request.Context()) == nil
		}
	}
	ok(c, gin.H{
		"model_loaded":       api.Predict.ModelLoaded(),
		"database_connected": dbOK,
		"payment_configured": api.Payments.GatewayConfigured(),
	})
}
