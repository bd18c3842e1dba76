// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package amount_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
)

const maxUint256 = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

func TestFromString(t *testing.T) {
	a, err := amount.FromString("5000000000000000000000000")
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "5000000000000000000000000", a.String(), "wrong value")

	for _, s := range []string{"", "-1", "1.5", "0x10", "abc"} {
		_, err := amount.FromString(s)
		assert.Equal(t, fault.InvalidAmount, err, "wrong error for: %q", s)
	}
}

func TestArithmetic(t *testing.T) {
	byteCost := amount.MustFromString("10000000000000000000")

	cost, err := byteCost.MulUint64(99)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "990000000000000000000", cost.String(), "wrong product")

	sum, err := cost.Add(amount.New(1))
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "990000000000000000001", sum.String(), "wrong sum")

	diff, ok := sum.Sub(cost)
	assert.True(t, ok, "unexpected underflow")
	assert.Equal(t, amount.New(1), diff, "wrong difference")

	_, ok = cost.Sub(sum)
	assert.False(t, ok, "expected underflow")

	max := amount.MustFromString(maxUint256)
	_, err = max.Add(amount.New(1))
	assert.Equal(t, fault.AmountOverflow, err, "expected add overflow")

	_, err = max.MulUint64(2)
	assert.Equal(t, fault.AmountOverflow, err, "expected multiply overflow")

	assert.True(t, cost.LessThan(sum), "wrong comparison")
	assert.Equal(t, 0, cost.Cmp(cost), "wrong comparison")
	assert.True(t, amount.Zero.IsZero(), "zero is not zero")
}

func TestPack(t *testing.T) {
	a := amount.MustFromString("123456789012345678901234567890")
	packed := a.Pack()
	assert.Equal(t, 32, len(packed), "wrong packed length")

	b, err := amount.Unpack(packed)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, a, b, "wrong unpacked value")

	_, err = amount.Unpack(packed[1:])
	assert.Equal(t, fault.InvalidAmount, err, "short buffer accepted")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Deposit amount.Amount `json:"deposit"`
	}

	h := holder{Deposit: amount.New(42)}
	buffer, err := json.Marshal(h)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, `{"deposit":"42"}`, string(buffer), "wrong JSON")

	var back holder
	err = json.Unmarshal([]byte(`{"deposit":"7000"}`), &back)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, amount.New(7000), back.Deposit, "wrong value")
}
