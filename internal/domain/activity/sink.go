package activity

import "context"

// Sink records activity entries. Recording is fire-and-forget: callers
// never fail a business operation because logging failed, and the sink is
// never enlisted in a ledger transaction.
type Sink interface {
	Record(ctx context.Context, action, details string)
}
