// SPDX-License-Identifier: MIT
// Package moment: sentinel error set.
package moment

import "errors"

// ErrRange indicates an OfRange subrange that violates
// 0 ≤ from ≤ to ≤ len(values). Checked before any accumulation begins.
var ErrRange = errors.New("moment: subrange out of bounds")
