package payment

import "errors"

var (
	// ErrUnknownTier means the client-supplied amount matches no
	// configured price point. Amounts are pinned server-side; an
	// arbitrary integer from the client is never forwarded to the
	// gateway.
	ErrUnknownTier = errors.New("amount does not match a configured price tier")

	// ErrUnknownOrder means no order with the given gateway order id exists.
	ErrUnknownOrder = errors.New("unknown order")

	// ErrOrderOwnerMismatch means the caller is not the user the order
	// was created for.
	ErrOrderOwnerMismatch = errors.New("order belongs to a different user")

	// ErrInvalidSignature means the supplied payment signature does not
	// match the recomputed HMAC. The order is left untouched so a
	// genuine retry can still succeed.
	ErrInvalidSignature = errors.New("payment signature verification failed")

	// ErrGatewayUnavailable wraps transport-level failures talking to
	// the payment gateway. Retryable; the caller decides when.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
