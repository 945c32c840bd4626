package usecase

import (
	"go.uber.org/fx"

	"github.com/allmart/backoffice/internal/config"
	"github.com/allmart/backoffice/internal/domain/model"
	pkgAuth "github.com/allmart/backoffice/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewOrderUseCase,
		NewReportUseCase,
		NewCategoryUseCase,
		NewProductUseCase,
		newAuthUseCase,
	),
)

type authParams struct {
	fx.In

	Config *config.Config
	Hasher pkgAuth.PasswordHasher
	Tokens pkgAuth.Strategy
}

func newAuthUseCase(p authParams) *AuthUseCase {
	var accounts []model.AdminAccount
	accounts = append(accounts, p.Config.Accounts()...)
	return NewAuthUseCase(accounts, p.Hasher, p.Tokens)
}
