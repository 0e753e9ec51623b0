package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace/middleware"
	"marketplace/models"
	"marketplace/utils"
)

// MeHandler returns the authenticated user's profile.
func (hb *HandlerBundle) MeHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, actor.View())
}

// ProviderModeHandler toggles the caller's provider capability.
func (hb *HandlerBundle) ProviderModeHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	var req models.ProviderModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid provider mode request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := hb.UserService.SetProviderMode(actor, *req.Enabled); err != nil {
		logger.Error("Failed to set provider mode", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"provider_mode": *req.Enabled})
}
