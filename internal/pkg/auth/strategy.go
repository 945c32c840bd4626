package auth

import (
	"errors"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Claims is the identity carried by an issued token.
type Claims struct {
	User string
	Role model.Role
}

// Strategy issues and verifies admin session tokens.
type Strategy interface {
	IssueToken(user string, role model.Role) (string, error)
	ParseToken(token string) (*Claims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
