package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	serviceRepo "marketplace/database/repository/service"
	"marketplace/middleware"
	"marketplace/models"
	"marketplace/utils"
)

// CreateServiceHandler publishes a new listing for a provider-mode user.
func (hb *HandlerBundle) CreateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	var req models.ServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := hb.CatalogService.Create(actor, req)
	if err != nil {
		logger.Warn("Service creation failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.Serialize(svc))
}

// ListServicesHandler returns active listings matching the query filters.
func (hb *HandlerBundle) ListServicesHandler(c *gin.Context) {
	logger := getLogger(c)

	criteria := serviceRepo.SearchCriteria{
		Query:      c.Query("q"),
		Country:    c.Query("country"),
		Province:   c.Query("province"),
		Category:   c.Query("category"),
		ProviderID: c.Query("provider_id"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		criteria.Limit = limit
	}

	services, err := hb.CatalogService.List(criteria)
	if err != nil {
		logger.Error("Service listing failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	views := make([]any, 0, len(services))
	for i := range services {
		views = append(views, utils.Serialize(&services[i]))
	}
	c.JSON(http.StatusOK, views)
}

// GetServiceHandler returns one listing by ID.
func (hb *HandlerBundle) GetServiceHandler(c *gin.Context) {
	svc, err := hb.CatalogService.Get(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Serialize(svc))
}

// UpdateServiceHandler applies a partial update to an owned listing.
func (hb *HandlerBundle) UpdateServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	var req models.ServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := hb.CatalogService.Update(actor.ID.Hex(), c.Param("id"), req)
	if err != nil {
		logger.Warn("Service update failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.Serialize(svc))
}

// DeleteServiceHandler removes an owned listing.
func (hb *HandlerBundle) DeleteServiceHandler(c *gin.Context) {
	logger := getLogger(c)

	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthError{Message: "unauthorized"})
		return
	}

	if err := hb.CatalogService.Delete(actor.ID.Hex(), c.Param("id")); err != nil {
		logger.Warn("Service delete failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
