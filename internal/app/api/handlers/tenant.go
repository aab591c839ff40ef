package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nyumbani/rentals/internal/app/service/tenant"
	"github.com/nyumbani/rentals/pkg/response"
)

// ApiListTenants handles GET /tenants, searchable by account email via the
// "search" query parameter.
func ApiListTenants(tenants tenant.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := tenants.List(c.Request.Context(), c.Query("search"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ApiCreateTenant handles POST /tenants.
func ApiCreateTenant(tenants tenant.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tenant.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		row, err := tenants.Create(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

func RegisterTenantRoutes(r gin.IRouter, tenants tenant.Manager) {
	r.GET("/tenants", ApiListTenants(tenants))
	r.POST("/tenants", ApiCreateTenant(tenants))
}
