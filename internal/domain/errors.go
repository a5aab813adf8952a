package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrEventFull           = errors.New("event full")
	ErrAlreadyRegistered   = errors.New("already registered")
	ErrAlreadyApplied      = errors.New("application already submitted")
	ErrApplicationReviewed = errors.New("application already reviewed")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrCapacityBelowCount  = errors.New("capacity below registered count")
)
