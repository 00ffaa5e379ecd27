package entity

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")

	ErrLeadNotFound       = errors.New("lead not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrLeadAlreadyConverted = errors.New("lead already converted")
	ErrDuplicateConversion  = errors.New("a client already exists for this lead")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
