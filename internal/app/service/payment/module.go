package payment

import (
	"go.uber.org/fx"

	"github.com/nyumbani/rentals/internal/platform/mail"
	"github.com/nyumbani/rentals/internal/platform/mpesa"
)

// Module exposes the payment service, the gateway client and the
// confirmation mailer via Fx.
var Module = fx.Options(
	fx.Provide(mpesa.NewClient),
	fx.Provide(mail.NewClient),
	fx.Provide(NewService),
)
