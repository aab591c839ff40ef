package property

import "go.uber.org/fx"

// Module exposes the property service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
