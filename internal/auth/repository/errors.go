package repository

import "errors"

var (
	ErrDuplicate      = errors.New("duplicate record")
	ErrFailedToInsert = errors.New("failed to insert user")
	ErrFailedToGet    = errors.New("failed to get user")
)
