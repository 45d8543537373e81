package domain

import "errors"

// ValidationCode identifies why a registration or trainer change was rejected.
type ValidationCode string

const (
	CodeUsernameTaken         ValidationCode = "username_taken"
	CodeEmailTaken            ValidationCode = "email_taken"
	CodePasswordTooShort      ValidationCode = "password_too_short"
	CodePasswordMissingDigit  ValidationCode = "password_missing_digit"
	CodePasswordMissingSymbol ValidationCode = "password_missing_symbol"
	CodeInvalidRole           ValidationCode = "invalid_role"
)

var validationMessages = map[ValidationCode]string{
	CodeUsernameTaken:         "username is empty or already taken",
	CodeEmailTaken:            "email is empty or already taken",
	CodePasswordTooShort:      "password must be at least 8 characters",
	CodePasswordMissingDigit:  "password must contain at least one digit",
	CodePasswordMissingSymbol: "password must contain at least one symbol",
	CodeInvalidRole:           "role must be one of Admin, Trainer, Member",
}

// ValidationError is a recoverable rejection of caller input. Two validation
// errors match under errors.Is when their codes are equal.
type ValidationError struct {
	Code ValidationCode
}

func (e *ValidationError) Error() string {
	if msg, ok := validationMessages[e.Code]; ok {
		return msg
	}
	return string(e.Code)
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

var (
	ErrUsernameTaken         = &ValidationError{Code: CodeUsernameTaken}
	ErrEmailTaken            = &ValidationError{Code: CodeEmailTaken}
	ErrPasswordTooShort      = &ValidationError{Code: CodePasswordTooShort}
	ErrPasswordMissingDigit  = &ValidationError{Code: CodePasswordMissingDigit}
	ErrPasswordMissingSymbol = &ValidationError{Code: CodePasswordMissingSymbol}
	ErrInvalidRole           = &ValidationError{Code: CodeInvalidRole}
)

// Authentication and integrity errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrStorageUnavailable wraps every connection or query failure of a repository.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidCredentialFormat means a stored digest is corrupted or unreadable.
	ErrInvalidCredentialFormat = errors.New("invalid credential format")
	// ErrUnknownRole means a stored role is outside the known set.
	ErrUnknownRole = errors.New("unknown role")
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("access forbidden")
)

// Trainer deletion confirmation.
var (
	ErrConfirmationRequired = errors.New("deletion requires a pending confirmation")
	ErrInvalidConfirmation  = errors.New("confirmation answer must be yes or no")
	ErrDeletionCancelled    = errors.New("deletion cancelled")
)

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
