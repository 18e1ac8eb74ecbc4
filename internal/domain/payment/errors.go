package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("duty payment not found")
	ErrInvalidMonth    = errors.New("invalid payment month")
)
