// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "time"

// SetClock replaces the revision clock used by Upsert
func (r *ElectionRegistry) SetClock(now func() time.Time) {
	r.now = now
}
