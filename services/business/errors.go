package business

import "errors"

var (
	// ErrEmailTaken indicates a duplicate registration email.
	ErrEmailTaken = errors.New("Business already registered with this email")
	// ErrNotFound indicates no account matches the lookup.
	ErrNotFound = errors.New("Business not found")
	// ErrBlocked indicates the account is blocked.
	ErrBlocked = errors.New("Your business account has been blocked. Contact admin.")
	// ErrPendingApproval indicates the account has not been approved yet.
	ErrPendingApproval = errors.New("Your business account is pending approval.")
	// ErrInvalidCredentials indicates a password mismatch.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrValidation indicates a profile update violating the document schema.
	ErrValidation = errors.New("Profile validation failed")
)
