//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/camtune/camtune/internal/core/observability/log"
)

// ProvideLogger yields the plugin-wide logger once main has constructed it.
func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return log.New(log.LevelDebug)
}
