package di

import (
	"go.uber.org/fx"

	"github.com/allmart/backoffice/internal/adapter/notify"
	"github.com/allmart/backoffice/internal/app"
	"github.com/allmart/backoffice/internal/config"
	"github.com/allmart/backoffice/internal/logger"
	"github.com/allmart/backoffice/internal/pkg/auth"
	"github.com/allmart/backoffice/internal/server/http/router"
	"github.com/allmart/backoffice/internal/storage/postgres"
	"github.com/allmart/backoffice/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended
// last so tests can override providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
