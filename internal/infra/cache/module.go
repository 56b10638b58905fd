package cache

import "go.uber.org/fx"

// Module provides the Redis client and the session repository
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewSessionRepository,
	),
)
