package services

import "errors"

// Domain errors. The error text is the stable machine-readable key the
// transport layer puts on the wire, so handlers respond with err.Error()
// and callers can match with errors.Is.
var (
	ErrBalanceNotFound     = errors.New("BALANCE_NOT_FOUND")
	ErrBalanceHasPayments  = errors.New("BALANCE_HAS_PAYMENTS")
	ErrInsufficientBalance = errors.New("INSUFFICIENT_BALANCE")
	ErrCreateBalance       = errors.New("FAILED_TO_CREATE_BALANCE")
	ErrUpdateBalance       = errors.New("FAILED_TO_UPDATE_BALANCE")
	ErrDeleteBalance       = errors.New("FAILED_TO_DELETE_BALANCE")

	ErrPaymentNotFound = errors.New("PAYMENT_NOT_FOUND")
	ErrCreatePayment   = errors.New("FAILED_TO_CREATE_PAYMENT")
	ErrUpdatePayment   = errors.New("FAILED_TO_UPDATE_PAYMENT")
	ErrDeletePayment   = errors.New("FAILED_TO_DELETE_PAYMENT")

	ErrUserNotFound       = errors.New("USER_NOT_FOUND")
	ErrCreateUser         = errors.New("FAILED_TO_CREATE_USER")
	ErrEmailInUse         = errors.New("EMAIL_IN_USE")
	ErrUsernameInUse      = errors.New("USERNAME_IN_USE")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")

	ErrUnknown = errors.New("SOMETHING_GONE_WRONG")
)

// Success message keys, same wire convention as the errors above.
const (
	MsgBalanceCreated = "BALANCE_CREATED"
	MsgBalanceUpdated = "BALANCE_UPDATED"
	MsgBalanceDeleted = "BALANCE_DELETED"
	MsgPaymentCreated = "PAYMENT_CREATED"
	MsgPaymentUpdated = "PAYMENT_UPDATED"
	MsgPaymentDeleted = "PAYMENT_DELETED"
	MsgUserCreated    = "USER_CREATED"
)
