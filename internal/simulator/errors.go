package simulator

import "errors"

// Validation failures at the action boundary leave state unchanged and
// are retryable. ErrBankrupt is terminal for the session.
var (
	ErrBankrupt         = errors.New("session is bankrupt")
	ErrDaySettled       = errors.New("day already settled")
	ErrInsufficientCash = errors.New("insufficient cash")
	ErrLoanActive       = errors.New("loan already active for this option")
	ErrOwnerProtected   = errors.New("the owner cannot be fired")
)
