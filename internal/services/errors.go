package services

import "errors"

// Sentinel errors surfaced to the transport layer, which maps them onto
// HTTP status codes.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateWallet      = errors.New("user with this wallet address already exists")
	ErrDuplicateEmail       = errors.New("user with this email already exists")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteExpired        = errors.New("invite has expired")
	ErrInviteAlreadyUsed    = errors.New("invite has already been used")
	ErrNotImplemented       = errors.New("not implemented")
	ErrBadRequest           = errors.New("bad request")
)
