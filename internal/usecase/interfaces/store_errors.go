package interfaces

import "errors"

// ErrStoreUnavailable wraps document-store failures (unreachable endpoint,
// misconfiguration, throttling). The HTTP layer maps it to 503; it is never
// retried here.
var ErrStoreUnavailable = errors.New("document store unavailable")
