package services

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrJobNotFound    = errors.New("job not found")
	ErrAlreadyApplied = errors.New("already applied")
	ErrValidation     = errors.New("validation failed")
	ErrStorage        = errors.New("storage failure")
)
