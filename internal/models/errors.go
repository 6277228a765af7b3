package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEmailTaken        = errors.New("this email address is already registered")
	ErrSessionNotFound   = errors.New("the session token is not valid")
	ErrDateRequired      = errors.New("you must specify a date for the transaction")
	ErrCategoryNameEmpty = errors.New("you must specify a name for the category")
)
