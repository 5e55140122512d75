package ledger

import "errors"

// Every declined command wraps one of these. Declines are caller-facing
// results, not failures: the ledger is left exactly as it was.
var (
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
)
