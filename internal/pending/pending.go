// Package pending remembers which sale each operator has finalized but not
// yet paid, so a payment request may omit the sale id.
package pending

import (
	"context"
	"errors"
)

// ErrNone means the operator has no sale awaiting payment.
var ErrNone = errors.New("pending: no sale pinned")

// Registry maps an operator key to its current unpaid sale.
type Registry interface {
	// Pin replaces whatever sale the operator had pinned.
	Pin(ctx context.Context, operador string, vendaID uint) error
	// Current returns ErrNone when nothing is pinned.
	Current(ctx context.Context, operador string) (uint, error)
	// Clear unpins vendaID only if it is still the operator's current sale.
	Clear(ctx context.Context, operador string, vendaID uint) error
}
