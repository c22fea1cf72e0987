// SPDX-License-Identifier: MIT
// Package wideint: sentinel error set.
package wideint

import "errors"

// ErrOverflow indicates that the exact value held by a wide integer lies
// outside the range of the narrow type requested by the caller. The
// accumulator itself remains valid and exact; only the narrow read fails.
var ErrOverflow = errors.New("wideint: value out of range for requested type")
