package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nyumbani/rentals/internal/app/service/payment"
	cfgpkg "github.com/nyumbani/rentals/pkg/config"
	"github.com/nyumbani/rentals/pkg/logctx"
	"github.com/nyumbani/rentals/pkg/response"
	"go.uber.org/zap"
)

// ApiCreatePayment handles POST /payments: records a payment row directly.
func ApiCreatePayment(payments payment.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		row, err := payments.Create(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, payment.ErrBookingNotFound) || errors.Is(err, payment.ErrInvalidStatus) {
				c.JSON(http.StatusBadRequest, response.Err(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// ApiInitiatePayment handles POST /payments/initiate: STK push for a
// booking's monthly price.
func ApiInitiatePayment(payments payment.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.Err(err.Error()))
			return
		}
		row, err := payments.InitiateCheckout(c.Request.Context(), &req)
		if err != nil {
			switch {
			case errors.Is(err, payment.ErrBookingNotFound):
				c.JSON(http.StatusNotFound, response.Err(err.Error()))
			case errors.Is(err, payment.ErrGateway):
				c.JSON(http.StatusBadGateway, response.Err(err.Error()))
			default:
				c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			}
			return
		}
		c.JSON(http.StatusCreated, row)
	}
}

// ApiPaymentCallback handles POST /payments/callback: the gateway
// notification relayed by the trusted upstream. Every failure other than a
// missing booking is reported as a 500 carrying the raw error text; the
// relay retries on its own schedule, not ours.
func ApiPaymentCallback(payments payment.Manager, cfg *cfgpkg.Config, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret := cfg.Mpesa.CallbackSecret; secret != "" {
			if c.GetHeader("X-Callback-Token") != secret {
				c.JSON(http.StatusUnauthorized, response.Err("invalid callback token"))
				return
			}
		}

		var req payment.CallbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}

		logctx.FromGin(c, log).Infow("payment_callback_received", "booking_id", req.BookingID, "result_code", req.ResultCode)

		res, err := payments.Reconcile(c.Request.Context(), &req)
		if err != nil {
			if errors.Is(err, payment.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, response.Err(err.Error()))
				return
			}
			logctx.FromGin(c, log).Errorw("payment_callback_failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, response.Err(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, response.Msg(fmt.Sprintf("payment processed; booking status: %s", res.BookingStatus)))
	}
}

func RegisterPaymentRoutes(r gin.IRouter, payments payment.Manager, cfg *cfgpkg.Config, log *zap.SugaredLogger) {
	r.POST("/payments", ApiCreatePayment(payments))
	r.POST("/payments/initiate", ApiInitiatePayment(payments))
	r.POST("/payments/callback", ApiPaymentCallback(payments, cfg, log))
}
