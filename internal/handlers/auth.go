package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/carvalueai/internal/apperr"
	"github.com/you/carvalueai/internal/middlewares"
)

func (api *API) Signup(c *gin.Context) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	u, token, err := api.Auth.Signup(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"user_id": u.UserID, "token": token})
}

func (api *API) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("invalid request body"))
		return
	}
	u, token, err := api.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"user_id": u.UserID, "token": token, "name": u.Name, "email": u.Email})
}

// Logout is an acknowledgment; tokens are stateless and expire on their own.
func (api *API) Logout(c *gin.Context) {
	ok(c, gin.H{"message": "logged out"})
}

func (api *API) Me(c *gin.Context) {
	u, err := api.Auth.Me(c.Request.Context(), middlewares.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, gin.H{"user": u})
}

func (api *API) VerifyToken(c *gin.Context) {
	var in struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.Validation("token is required"))
		return
	}
	claims, err := api.Auth.Verify(in.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "success", "valid": false})
		return
	}
	ok(c, gin.H{"valid": true, "user_id": claims.Sub, "email": claims.Email})
}
