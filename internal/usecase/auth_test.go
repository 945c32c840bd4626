package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	pkgAuth "github.com/allmart/backoffice/internal/pkg/auth"
	testhelpers "github.com/allmart/backoffice/internal/test"
)

func newAuthUseCaseForTest() *AuthUseCase {
	accounts := []model.AdminAccount{
		{User: "admin", PasswordHash: "hash:secret", Role: model.RoleAdmin},
		{User: "editor", PasswordHash: "hash:letmein", Role: model.RoleEditor},
	}
	return NewAuthUseCase(accounts, testhelpers.HasherStub{}, testhelpers.StrategyStub{
		IssueFn: func(user string, role model.Role) (string, error) {
			return "token:" + user, nil
		},
	})
}

func TestAuthUseCaseAuthenticateSuccess(t *testing.T) {
	uc := newAuthUseCaseForTest()

	token, role, err := uc.Authenticate(context.Background(), "admin", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "token:admin" || role != model.RoleAdmin {
		t.Fatalf("unexpected result %q %q", token, role)
	}

	token, role, err = uc.Authenticate(context.Background(), "  editor  ", "letmein")
	if err != nil {
		t.Fatalf("login must tolerate surrounding spaces: %v", err)
	}
	if token != "token:editor" || role != model.RoleEditor {
		t.Fatalf("unexpected result %q %q", token, role)
	}
}

func TestAuthUseCaseAuthenticateFailures(t *testing.T) {
	uc := newAuthUseCaseForTest()

	cases := []struct{ user, password string }{
		{"", "secret"},
		{"admin", ""},
		{"ghost", "secret"},
		{"admin", "wrong"},
	}
	for _, c := range cases {
		if _, _, err := uc.Authenticate(context.Background(), c.user, c.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("user=%q password=%q: expected invalid credentials, got %v", c.user, c.password, err)
		}
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := newAuthUseCaseForTest()

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	claims, err := uc.ParseToken("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.User != "admin" || claims.Role != model.RoleAdmin {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
