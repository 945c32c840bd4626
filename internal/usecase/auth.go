package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	pkgAuth "github.com/allmart/backoffice/internal/pkg/auth"
)

// AuthUseCase validates back-office logins against the fixed account list
// and manages session tokens. There is no registration path.
type AuthUseCase struct {
	accounts []model.AdminAccount
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts []model.AdminAccount, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, hasher: hasher, tokens: strategy}
}

// Authenticate checks credentials and returns a session token with the
// account role.
func (u *AuthUseCase) Authenticate(ctx context.Context, user, password string) (string, model.Role, error) {
	user = strings.TrimSpace(user)
	if user == "" || password == "" {
		return "", "", domainErrors.ErrInvalidCredentials
	}

	var account *model.AdminAccount
	for i := range u.accounts {
		if u.accounts[i].User == user {
			account = &u.accounts[i]
			break
		}
	}
	if account == nil {
		return "", "", domainErrors.ErrInvalidCredentials
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return "", "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(account.User, account.Role)
	if err != nil {
		return "", "", err
	}
	return token, account.Role, nil
}

// ParseToken extracts identity from a session token.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
