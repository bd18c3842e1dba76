// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - charge callers for the persistent storage their
// call adds
//
// the price is exact: the storage usage is measured before and after
// the mutation and the caller pays delta × byte cost; any surplus of
// the attached deposit is refunded in the same call
package rent

import (
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
)

// Meter - storage usage and its price
type Meter interface {
	StorageUsage() uint64
	StorageByteCost() amount.Amount
}

// Environment - the per call capabilities needed to collect rent
type Environment interface {
	Meter
	Predecessor() string
	AttachedDeposit() amount.Amount
	Transfer(receiver string, value amount.Amount)
}

// Receipt - outcome of a successful payment check
type Receipt struct {
	Bytes  uint64
	Cost   amount.Amount
	Refund amount.Amount
}

// Cost - price of holding a number of bytes
func Cost(meter Meter, bytes uint64) (amount.Amount, error) {
	return meter.StorageByteCost().MulUint64(bytes)
}

// AssertPayment - run update and require the attached deposit to
// cover the storage it added
//
// an error from update is returned unchanged; a shrink in usage is
// charged as zero; on success any surplus is refunded to the caller
func AssertPayment(env Environment, update func() error) (Receipt, error) {
	before := env.StorageUsage()

	if err := update(); nil != err {
		return Receipt{}, err
	}

	after := env.StorageUsage()

	delta := uint64(0)
	if after > before {
		delta = after - before
	}

	required, err := Cost(env, delta)
	if nil != err {
		return Receipt{}, err
	}

	deposit := env.AttachedDeposit()
	refund, ok := deposit.Sub(required)
	if !ok {
		return Receipt{}, &fault.RequiredPayment{Required: required.String()}
	}

	if !refund.IsZero() {
		env.Transfer(env.Predecessor(), refund)
	}

	return Receipt{
		Bytes:  delta,
		Cost:   required,
		Refund: refund,
	}, nil
}
