package models

import "errors"

// Error constants for registration workflow operations
var (
	ErrValidationFailed  = errors.New("patient identity failed validation")
	ErrDuplicatesPending = errors.New("possible duplicate records require resolution")
	ErrSubmitInFlight    = errors.New("a submission is already in progress")
	ErrSessionClosed     = errors.New("registration session is closed")
	ErrRecordNotFound    = errors.New("patient record not found")
	ErrCPFAlreadyExists  = errors.New("a record with this CPF already exists")
	ErrCNSAlreadyExists  = errors.New("a record with this CNS already exists")
)
