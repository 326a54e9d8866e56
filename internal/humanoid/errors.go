// File: internal/humanoid/errors.go
package humanoid

import "errors"

// ErrInvalidArgument reports a contract violation by the caller, such as a
// movement request without an end point. No movement is attempted.
var ErrInvalidArgument = errors.New("humanoid: invalid argument")
