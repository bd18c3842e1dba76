// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/proofd/fault"
)

// limiters unused for this long are forgotten
const idleExpiry = 10 * time.Minute

// Limit - delay a single request, fail if it can never be served
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// PerKey - one limiter for each key, e.g. calling account
type PerKey struct {
	limit    rate.Limit
	burst    int
	limiters *cache.Cache
}

// NewPerKey - create a keyed set of limiters
func NewPerKey(limit rate.Limit, burst int) *PerKey {
	return &PerKey{
		limit:    limit,
		burst:    burst,
		limiters: cache.New(idleExpiry, 2*idleExpiry),
	}
}

// Limit - delay a request from key
func (p *PerKey) Limit(key string) error {
	if item, found := p.limiters.Get(key); found {
		p.limiters.SetDefault(key, item)
		return Limit(item.(*rate.Limiter))
	}

	limiter := rate.NewLimiter(p.limit, p.burst)
	if err := p.limiters.Add(key, limiter, cache.DefaultExpiration); nil != err {
		// lost a race with another request from the same key
		if item, found := p.limiters.Get(key); found {
			limiter = item.(*rate.Limiter)
		}
	}
	return Limit(limiter)
}
