package domain

import (
	"errors"
	"fmt"
)

const (
	RoleAdmin = "admin"

	SessionHeader = "X-Session-ID"
)

var (
	MesaageUserNotAllowed        = "user not allowed"
	MessageFailedBodyRequest     = "failed to parse request body"
	MessageFailedProcessRequest  = "failed to process request"
	MessageFailedGetToken        = "failed to get token"
	MessageFailedTokenInvalid    = "failed to token invalid"
	MessageSuccessCreateSession  = "session created successfully"
	MessageSuccessDeleteSession  = "session closed successfully"
	MessageFailedDeleteSession   = "failed to close session"
	MessageSuccessLogin          = "login successful"
	MessageFailedLogin           = "failed to login"
	MessageSuccessGetDirectory   = "contacts retrieved successfully"
	MessageFailedGetDirectory    = "failed to retrieve contacts"
	MessageSuccessGetOrphanClaim = "orphaned claims retrieved successfully"
	MessageFailedGetOrphanClaim  = "failed to retrieve orphaned claims"

	// Error taxonomy. Service errors wrap one of these.
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForeignKey = errors.New("foreign key violation")
	ErrStore      = errors.New("store error")

	ErrParseSessionID     = fmt.Errorf("%w: invalid session id", ErrValidation)
	ErrSessionNotFound    = fmt.Errorf("session %w", ErrNotFound)
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrUserNotAllowed     = errors.New("user not allowed")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// StoreError marks err as a store failure while keeping the driver error in
// the chain for errors.Is/As.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
