// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/proofd/amount"
	"github.com/bitmark-inc/proofd/fault"
	"github.com/bitmark-inc/proofd/rent"
)

// Reserve - the part of the balance that pays for current storage
func Reserve(meter rent.Meter) (amount.Amount, error) {
	return rent.Cost(meter, meter.StorageUsage())
}

// Withdraw - send everything above the storage reserve to the owner
//
// returns the amount transferred; zero is a valid result
func (r *Registry) Withdraw(env Environment) (amount.Amount, error) {
	if err := assertNotPayable(env); nil != err {
		return amount.Zero, err
	}

	caller := env.Predecessor()
	if caller != r.owner {
		r.log.Warnf("withdraw by: %s denied", caller)
		return amount.Zero, fault.NotContractOwner
	}

	reserved, err := Reserve(env)
	if nil != err {
		return amount.Zero, err
	}

	balance := env.AccountBalance()
	transferable, ok := balance.Sub(reserved)
	if !ok {
		r.log.Errorf("withdraw: balance: %s below reserve: %s", balance, reserved)
		return amount.Zero, fault.InsufficientReserve
	}

	if !transferable.IsZero() {
		env.Transfer(r.owner, transferable)
	}

	r.log.Infof("withdraw: %s to: %s reserve: %s", transferable, r.owner, reserved)

	return transferable, nil
}
