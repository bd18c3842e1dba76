// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a gauge of concurrent users that remembers its highest value
type Counter struct {
	current uint64
	peak    uint64
	total   uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	n := atomic.AddUint64(&c.current, 1)
	atomic.AddUint64(&c.total, 1)
	for {
		peak := atomic.LoadUint64(&c.peak)
		if n <= peak || atomic.CompareAndSwapUint64(&c.peak, peak, n) {
			return n
		}
	}
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(&c.current, ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.current)
}

// Peak - highest value seen
func (c *Counter) Peak() uint64 {
	return atomic.LoadUint64(&c.peak)
}

// Total - number of increments ever made
func (c *Counter) Total() uint64 {
	return atomic.LoadUint64(&c.total)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == atomic.LoadUint64(&c.current)
}
