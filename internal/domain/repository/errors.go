package repository

import "errors"

// ErrDuplicateEmail is returned by Create when the store already holds an account with the email
var ErrDuplicateEmail = errors.New("email already exists")
