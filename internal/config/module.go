package config

import "go.uber.org/fx"

// Module provides the loaded configuration to the fx graph.
var Module = fx.Options(fx.Provide(Load))
