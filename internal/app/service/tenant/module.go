package tenant

import "go.uber.org/fx"

// Module exposes the tenant service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
