package errors

import "errors"

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidPayment      = errors.New("invalid payment")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
	ErrMissingOrderContext = errors.New("session metadata missing order context")
)
