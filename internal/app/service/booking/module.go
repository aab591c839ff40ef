package booking

import "go.uber.org/fx"

// Module exposes the booking service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
