package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of a request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when a password does not match the
	// stored credential.
	ErrWrongPassword = errors.New("wrong password")

	// ErrGreetingIsNotSpecified is returned when the app info service is
	// built without a greeting.
	ErrGreetingIsNotSpecified = errors.New("greeting is not specified")
)
