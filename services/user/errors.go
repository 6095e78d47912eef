package user

import "errors"

var (
	// ErrEmailTaken indicates a duplicate registration email.
	ErrEmailTaken = errors.New("User already registered with this email")
	// ErrNotFound indicates no account matches the login email.
	ErrNotFound = errors.New("User not found")
	// ErrBlocked indicates the account is blocked.
	ErrBlocked = errors.New("Your account has been blocked. Contact admin.")
	// ErrPendingApproval indicates the account has not been approved yet.
	ErrPendingApproval = errors.New("Your account is pending approval.")
	// ErrInvalidCredentials indicates a password mismatch.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)
