package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/nyumbani/rentals/internal/app/api/middleware"
	"github.com/nyumbani/rentals/internal/app/service/property"
	"github.com/nyumbani/rentals/pkg/response"
)

// ApiListProperties handles GET /properties: the public listing, approved
// rows only.
func ApiListProperties(props property.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := props.PublicList(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ApiListLandlordProperties handles GET /landlord/properties.
func ApiListLandlordProperties(props property.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := props.ListByLandlord(c.Request.Context(), mw.UserIDFromContext(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ApiCreateProperty handles POST /landlord/properties. Ownership and the
// approved flag come from the server, never the request body.
func ApiCreateProperty(props property.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req property.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		row, err := props.Create(c.Request.Context(), mw.UserIDFromContext(c), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// ApiApproveProperty handles the admin approval, exposed as both PUT and
// plain POST for simpler clients.
func ApiApproveProperty(props property.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Err("invalid property id"))
			return
		}
		row, err := props.Approve(c.Request.Context(), uint(id))
		if err != nil {
			if errors.Is(err, property.ErrPropertyNotFound) {
				c.JSON(http.StatusNotFound, response.Err(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, row)
	}
}

func RegisterPropertyRoutes(pub, landlord, admin gin.IRouter, props property.Manager) {
	pub.GET("/properties", ApiListProperties(props))
	landlord.GET("/properties", ApiListLandlordProperties(props))
	landlord.POST("/properties", ApiCreateProperty(props))
	admin.PUT("/properties/:id/approve", ApiApproveProperty(props))
	admin.POST("/properties/:id/approve", ApiApproveProperty(props))
}
