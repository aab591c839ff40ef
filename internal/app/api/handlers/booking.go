package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/nyumbani/rentals/internal/app/api/middleware"
	"github.com/nyumbani/rentals/internal/app/service/booking"
	"github.com/nyumbani/rentals/pkg/response"
)

// ApiListBookings handles GET /bookings: the unrestricted public list.
func ApiListBookings(bookings booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := bookings.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ApiCreateBooking handles POST /bookings.
func ApiCreateBooking(bookings booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		row, err := bookings.Create(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, booking.ErrTenantNotFound) || errors.Is(err, booking.ErrPropertyNotFound) {
				c.JSON(http.StatusBadRequest, response.Err(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// ApiListLandlordBookings handles GET /landlord/bookings: bookings against
// properties the caller owns.
func ApiListLandlordBookings(bookings booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := bookings.ListByLandlord(c.Request.Context(), mw.UserIDFromContext(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ApiScanBookings handles POST /admin/bookings: paginated, filterable list
// over all bookings.
func ApiScanBookings(bookings booking.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req booking.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		res, err := bookings.Scan(c.Request.Context(), &req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func RegisterBookingRoutes(pub, landlord, admin gin.IRouter, bookings booking.Manager) {
	pub.GET("/bookings", ApiListBookings(bookings))
	pub.POST("/bookings", ApiCreateBooking(bookings))
	landlord.GET("/bookings", ApiListLandlordBookings(bookings))
	// Plain unfiltered list plus a filterable scan on the same path.
	admin.GET("/bookings", ApiListBookings(bookings))
	admin.POST("/bookings", ApiScanBookings(bookings))
}
