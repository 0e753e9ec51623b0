package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/middleware"
	"marketplace/models"
	"marketplace/services/user"
	"marketplace/utils"
)

// SignupHandler handles account creation.
func (hb *HandlerBundle) SignupHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := hb.UserService.Signup(user.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Country:  req.Country,
		Province: req.Province,
	})
	if err != nil {
		logger.Warn("Signup failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": resp.User.View(), "token": resp.Token})
}

// LoginHandler verifies credentials and issues a new session token.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := hb.UserService.Login(req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": resp.User.View(), "token": resp.Token})
}

// LogoutHandler revokes the presented session token.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}
	token := c.GetString(middleware.CtxTokenKey)

	if err := hb.UserService.Logout(actor, token); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revoked": true})
}
