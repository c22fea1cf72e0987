// SPDX-License-Identifier: MIT
// Package exact: sentinel error set.
package exact

import "errors"

// ErrRange indicates an OfRange subrange that violates
// 0 ≤ from ≤ to ≤ len(values). Checked before any accumulation begins.
var ErrRange = errors.New("exact: subrange out of bounds")
