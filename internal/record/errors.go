package record

import "errors"

var (
	ErrRecordNotFound = errors.New("task not found")
	ErrInvalidPayload = errors.New("invalid payload")
)
