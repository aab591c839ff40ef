package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/nyumbani/rentals/internal/app/api/server"
	"github.com/nyumbani/rentals/internal/app/service/account"
	"github.com/nyumbani/rentals/internal/app/service/booking"
	"github.com/nyumbani/rentals/internal/app/service/payment"
	"github.com/nyumbani/rentals/internal/app/service/property"
	"github.com/nyumbani/rentals/internal/app/service/tenant"
	"github.com/nyumbani/rentals/internal/platform/db"
	"github.com/nyumbani/rentals/pkg/config"
	"github.com/nyumbani/rentals/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	account.Module,
	property.Module,
	booking.Module,
	tenant.Module,
	payment.Module,
)
