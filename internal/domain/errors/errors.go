package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidOrder       = errors.New("invalid order payload")
	ErrInvalidWindow      = errors.New("invalid report window")
	ErrVersionConflict    = errors.New("version conflict")
	ErrForbidden          = errors.New("forbidden")
)
