// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	for i := 0; i < 10; i += 1 {
		assert.Nil(t, ratelimit.Limit(limiter), "%d: limited within burst", i)
	}
}

func TestLimitZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(1, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "wrong error")
}

func TestPerKeyIndependent(t *testing.T) {
	p := ratelimit.NewPerKey(1, 1)

	start := time.Now()
	assert.Nil(t, p.Limit("alice"), "alice limited")
	assert.Nil(t, p.Limit("bob"), "bob limited")
	assert.True(t, time.Since(start) < 500*time.Millisecond, "keys share a limiter")
}
